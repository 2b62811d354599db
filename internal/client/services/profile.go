package services

import (
	"bytes"
	"context"

	"github.com/dmitrijs2005/lmsclient/internal/client/client"
	"github.com/dmitrijs2005/lmsclient/internal/client/models"
	"github.com/dmitrijs2005/lmsclient/internal/client/notify"
	"github.com/dmitrijs2005/lmsclient/internal/client/session"
)

const (
	msgNotSignedIn     = "Please log in first"
	msgNothingToUpdate = "Nothing to update"
	msgProfileOK       = "Profile updated successfully!"
	msgProfileFail     = "Failed to update profile"
	msgPasswordMissing = "All password fields are required"
	msgPasswordMatch   = "New passwords do not match"
	msgPasswordOK      = "Password updated successfully!"
	msgPasswordFail    = "Failed to update password"
	msgRefreshFail     = "Failed to load profile"
	msgLoggedOut       = "Logged out"
)

// ProfileService works on the signed-in user. Any 401 from the server
// clears the session.
type ProfileService struct {
	base
}

func NewProfileService(api client.Client, store *session.Store, opts ...Option) *ProfileService {
	return &ProfileService{base: newBase(api, store, opts)}
}

func (p *ProfileService) current(ctx context.Context, action string) (models.Session, *FlowError) {
	sess, ok := p.store.Get()
	if !ok {
		return sess, p.report(ctx, action, validationError(ErrNotSignedIn, msgNotSignedIn))
	}
	return sess, nil
}

// fail reports err, clearing the session first when the server rejected
// the token.
func (p *ProfileService) fail(ctx context.Context, action string, err error, fallback string) *FlowError {
	p.store.HandleAPIError(ctx, err)
	return p.report(ctx, action, toFlowError(err, fallback))
}

// Refresh re-fetches the user and replaces the session copy.
func (p *ProfileService) Refresh(ctx context.Context) (models.User, error) {
	sess, fe := p.current(ctx, "refresh profile")
	if fe != nil {
		return models.User{}, fe
	}
	u, err := p.api.Me(ctx, sess.Token)
	if err != nil {
		return models.User{}, p.fail(ctx, "refresh profile", err, msgRefreshFail)
	}
	return p.replace(u), nil
}

// Update sends the changed fields, applies them to the session user and
// overlays whatever non-empty fields the server echoes back.
func (p *ProfileService) Update(ctx context.Context, upd models.ProfileUpdate) (models.User, error) {
	sess, fe := p.current(ctx, "update profile")
	if fe != nil {
		return models.User{}, fe
	}
	if upd.Empty() {
		return models.User{}, p.report(ctx, "update profile", validationError(ErrMissingFields, msgNothingToUpdate))
	}

	u, err := p.api.UpdateUser(ctx, sess.Token, sess.User.ID, upd)
	if err != nil {
		return models.User{}, p.fail(ctx, "update profile", err, msgProfileFail)
	}

	_ = p.store.UpdateUser(func(cur *models.User) {
		upd.Apply(cur)
		if u != nil {
			cur.Overlay(*u)
		}
	})
	sess, _ = p.store.Get()
	p.log.Info(ctx, "profile updated", "user_id", sess.User.ID)
	p.succeed(msgProfileOK)
	return sess.User, nil
}

// replace swaps in the server's full copy of the user.
func (p *ProfileService) replace(u *models.User) models.User {
	if u == nil {
		sess, _ := p.store.Get()
		return sess.User
	}
	_ = p.store.UpdateUser(func(cur *models.User) { *cur = *u })
	sess, _ := p.store.Get()
	return sess.User
}

// ChangePassword checks that next and confirm match before any request.
func (p *ProfileService) ChangePassword(ctx context.Context, current, next, confirm []byte) error {
	sess, fe := p.current(ctx, "change password")
	if fe != nil {
		return fe
	}
	if len(current) == 0 || len(next) == 0 || len(confirm) == 0 {
		return p.report(ctx, "change password", validationError(ErrMissingFields, msgPasswordMissing))
	}
	if !bytes.Equal(next, confirm) {
		return p.report(ctx, "change password", validationError(ErrPasswordMismatch, msgPasswordMatch))
	}

	if err := p.api.ChangePassword(ctx, sess.Token, sess.User.ID, current, next); err != nil {
		return p.fail(ctx, "change password", err, msgPasswordFail)
	}

	p.log.Info(ctx, "password changed", "user_id", sess.User.ID)
	p.succeed(msgPasswordOK)
	return nil
}

// Logout clears the session locally. The API has no logout endpoint.
func (p *ProfileService) Logout(ctx context.Context) {
	p.store.Clear(ctx)
	p.notifier.Notify(notify.LevelInfo, msgLoggedOut)
}
