// Package guard decides whether a view may be shown for the current session.
package guard

import (
	"github.com/dmitrijs2005/lmsclient/internal/client/models"
	"github.com/dmitrijs2005/lmsclient/internal/client/session"
)

// Action is what the caller should do with a view.
type Action int

const (
	ActionRender Action = iota
	ActionLoading
	ActionRedirect
	ActionNotFound
)

func (a Action) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionLoading:
		return "loading"
	case ActionRedirect:
		return "redirect"
	case ActionNotFound:
		return "not_found"
	}
	return "unknown"
}

const (
	LoginPath   = "/login"
	LandingPath = "/dashboard"
)

// Decision is the outcome of a guard check. Target is set for redirects.
// Route and Params are filled in by Router.
type Decision struct {
	Action Action
	Target string
	Route  string
	Params map[string]string
}

// Check applies the protected-view policy. An empty roles list admits any
// signed-in user. A signed-in user without a required role is sent to the
// landing page rather than to login.
func Check(snap session.Snapshot, roles []models.Role) Decision {
	if !snap.Hydrated {
		return Decision{Action: ActionLoading}
	}
	if !snap.Authenticated() {
		return Decision{Action: ActionRedirect, Target: LoginPath}
	}
	if len(roles) > 0 && !snap.Session.User.HasAnyRole(roles) {
		return Decision{Action: ActionRedirect, Target: LandingPath}
	}
	return Decision{Action: ActionRender}
}
