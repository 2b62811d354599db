package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lmsclient/internal/client/client"
	"github.com/dmitrijs2005/lmsclient/internal/client/notify"
	"github.com/dmitrijs2005/lmsclient/internal/client/session"
	"github.com/dmitrijs2005/lmsclient/internal/logging"
)

// base holds the collaborators shared by every service.
type base struct {
	api      client.Client
	store    *session.Store
	notifier notify.Notifier
	log      logging.Logger
	now      func() time.Time
}

type Option func(*base)

func WithNotifier(n notify.Notifier) Option {
	return func(b *base) { b.notifier = n }
}

func WithLogger(l logging.Logger) Option {
	return func(b *base) { b.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

func newBase(api client.Client, store *session.Store, opts []Option) base {
	b := base{
		api:      api,
		store:    store,
		notifier: notify.Discard(),
		log:      logging.Discard(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(&b)
	}
	return b
}

func (b *base) succeed(msg string) {
	b.notifier.Notify(notify.LevelSuccess, msg)
}

// report notifies the user about fe and returns it.
func (b *base) report(ctx context.Context, action string, fe *FlowError) *FlowError {
	b.notifier.Notify(notify.LevelError, fe.Message)
	if fe.Kind == KindValidation {
		b.log.Debug(ctx, action+" rejected locally", "reason", fe.Message)
	} else {
		b.log.Warn(ctx, action+" failed", "kind", fe.Kind, "status", fe.Status, "error", fe.Err)
	}
	return fe
}
