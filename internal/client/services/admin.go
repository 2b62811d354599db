package services

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/dmitrijs2005/lmsclient/internal/client/client"
	"github.com/dmitrijs2005/lmsclient/internal/client/session"
)

const (
	msgAdminOK      = "Admin login successful! Welcome back!"
	msgAdminFail    = "Admin login failed"
	msgAdminMissing = "Email and password are required"
)

// AdminAuth is the single-step email and password login for administrators.
// A failed attempt leaves nothing behind, so it can simply be retried.
type AdminAuth struct {
	base
	busy atomic.Bool
}

func NewAdminAuth(api client.Client, store *session.Store, opts ...Option) *AdminAuth {
	return &AdminAuth{base: newBase(api, store, opts)}
}

// Login authenticates and commits the returned session. password is not
// retained.
func (a *AdminAuth) Login(ctx context.Context, email string, password []byte) error {
	if !a.busy.CompareAndSwap(false, true) {
		return validationError(ErrRequestInFlight, msgBusy)
	}
	defer a.busy.Store(false)

	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return a.report(ctx, "admin login", validationError(ErrMissingFields, msgAdminMissing))
	}

	res, err := a.api.AdminLogin(ctx, email, password)
	if err != nil {
		return a.report(ctx, "admin login", toFlowError(err, msgAdminFail))
	}
	sess, ok := res.Session()
	if !ok {
		return a.report(ctx, "admin login", toFlowError(client.ErrBadResponse, msgAdminFail))
	}
	if err := a.store.Set(ctx, sess); err != nil {
		return a.report(ctx, "admin login", toFlowError(err, msgAdminFail))
	}

	a.log.Info(ctx, "admin signed in", "user_id", sess.User.ID)
	a.succeed(msgAdminOK)
	return nil
}
