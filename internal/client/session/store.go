package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/lmsclient/internal/client/client"
	"github.com/dmitrijs2005/lmsclient/internal/client/models"
	"github.com/dmitrijs2005/lmsclient/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/lmsclient/internal/logging"
)

var (
	ErrIncompleteSession = errors.New("session requires both a user and a token")
	ErrNoSession         = errors.New("no active session")
)

// DefaultTokenKey is the repository key the bearer token is stored under.
const DefaultTokenKey = "token"

// Snapshot is a point-in-time view of the store.
// Hydrated is false until the first Hydrate call has finished.
type Snapshot struct {
	Session  models.Session
	Hydrated bool
}

// Authenticated reports whether the snapshot carries a complete session.
func (s Snapshot) Authenticated() bool {
	return s.Session.Valid()
}

// UserFetcher revalidates a persisted token. client.Client satisfies it.
type UserFetcher interface {
	Me(ctx context.Context, token string) (*models.User, error)
}

type Store struct {
	repo     credentials.Repository
	log      logging.Logger
	tokenKey string
	now      func() time.Time

	// writeMu is held across a memory change and the storage write that
	// goes with it, so storage always ends up matching memory.
	writeMu sync.Mutex

	mu       sync.RWMutex
	current  models.Session
	hydrated bool

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

func WithTokenKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.tokenKey = key
		}
	}
}

// WithClock overrides the clock used for the token expiry check.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(repo credentials.Repository, opts ...Option) *Store {
	s := &Store{
		repo:     repo,
		log:      logging.Discard(),
		tokenKey: DefaultTokenKey,
		now:      time.Now,
		subs:     make(map[int]func(Snapshot)),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Get returns the current session, if any.
func (s *Store) Get() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.current.Valid() {
		return models.Session{}, false
	}
	return s.current, true
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Hydrated: s.hydrated}
	if s.current.Valid() {
		snap.Session = s.current
	}
	return snap
}

// Set replaces the whole session and persists its token. A persistence
// failure is logged and the session is kept in memory only.
func (s *Store) Set(ctx context.Context, sess models.Session) error {
	if !sess.Valid() {
		return ErrIncompleteSession
	}

	s.writeMu.Lock()
	s.mu.Lock()
	s.current = sess
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.repo.Set(ctx, s.tokenKey, sess.Token); err != nil {
		s.log.Warn(ctx, "token not persisted, session kept in memory", "error", err)
	}
	s.writeMu.Unlock()
	s.log.Info(ctx, "session started", "user_id", sess.User.ID, "role", sess.User.Role)

	s.publish(snap)
	return nil
}

// Clear drops the session from memory and storage.
func (s *Store) Clear(ctx context.Context) {
	s.writeMu.Lock()
	s.mu.Lock()
	had := s.current.Valid()
	s.current = models.Session{}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, s.tokenKey); err != nil {
		s.log.Warn(ctx, "persisted token not removed", "error", err)
	}
	s.writeMu.Unlock()
	if had {
		s.log.Info(ctx, "session cleared")
	}

	s.publish(snap)
}

// UpdateUser applies patch to a copy of the current user and stores the
// result. The token and the user ID are left as they were.
func (s *Store) UpdateUser(patch func(*models.User)) error {
	s.mu.Lock()
	if !s.current.Valid() {
		s.mu.Unlock()
		s.log.Warn(context.Background(), "user update ignored", "error", ErrNoSession)
		return ErrNoSession
	}
	u := s.current.User
	patch(&u)
	u.ID = s.current.User.ID
	s.current.User = u
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) publish(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Hydrate restores the session from the persisted token. The user is
// re-fetched with fetcher so a stale token never produces a session.
//
// An expired JWT or a 401 discards the token. When the server cannot be
// reached the token is kept for the next start, no session is set, and the
// returned error matches client.ErrUnavailable. The store is marked hydrated
// in every case. A Set or Clear that lands while the token is being checked
// wins over the restored state.
func (s *Store) Hydrate(ctx context.Context, fetcher UserFetcher) error {
	defer s.markHydrated()

	token, err := s.repo.Get(ctx, s.tokenKey)
	if err != nil {
		s.log.Warn(ctx, "persisted token unreadable, starting signed out", "error", err)
		return nil
	}
	if token == "" {
		return nil
	}

	if tokenExpired(token, s.now()) {
		s.log.Info(ctx, "persisted token expired")
		s.forget(ctx, token)
		return nil
	}

	user, err := fetcher.Me(ctx, token)
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		s.log.Info(ctx, "persisted token rejected by server")
		s.forget(ctx, token)
		return nil
	case err != nil:
		s.log.Warn(ctx, "session not restored", "error", err)
		return fmt.Errorf("session.Hydrate: %w", err)
	}

	sess := models.Session{Token: token}
	if user != nil {
		sess.User = *user
	}
	if !sess.Valid() {
		s.forget(ctx, token)
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if !s.stillPersisted(ctx, token) {
		s.log.Info(ctx, "session changed while restoring, keeping the newer state")
		return nil
	}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "user_id", sess.User.ID)
	return nil
}

// forget removes token from storage unless it has been replaced meanwhile.
func (s *Store) forget(ctx context.Context, token string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if !s.stillPersisted(ctx, token) {
		return
	}
	if err := s.repo.Delete(ctx, s.tokenKey); err != nil {
		s.log.Warn(ctx, "persisted token not removed", "error", err)
	}
}

// stillPersisted reports whether storage still holds token. Callers hold writeMu.
func (s *Store) stillPersisted(ctx context.Context, token string) bool {
	cur, err := s.repo.Get(ctx, s.tokenKey)
	if err != nil {
		s.log.Warn(ctx, "persisted token unreadable", "error", err)
		return false
	}
	return cur == token
}

func (s *Store) markHydrated() {
	s.mu.Lock()
	s.hydrated = true
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// HandleAPIError clears the session when err is an authentication failure
// and reports whether it did so.
func (s *Store) HandleAPIError(ctx context.Context, err error) bool {
	if !errors.Is(err, client.ErrUnauthorized) {
		return false
	}
	s.log.Info(ctx, "server rejected token, signing out")
	s.Clear(ctx)
	return true
}
