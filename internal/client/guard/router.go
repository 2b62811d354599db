package guard

import (
	"path"
	"strings"

	"github.com/dmitrijs2005/lmsclient/internal/client/models"
	"github.com/dmitrijs2005/lmsclient/internal/client/session"
)

// Access is the visibility class of a route.
type Access int

const (
	Public Access = iota
	// GuestOnly routes send signed-in users to the landing page.
	GuestOnly
	Protected
)

// Route maps a path pattern to its access rule. Pattern segments starting
// with ":" capture a parameter.
type Route struct {
	Pattern string
	Access  Access
	Roles   []models.Role
}

// DefaultRoutes is the client's route table.
func DefaultRoutes() []Route {
	return []Route{
		{Pattern: "/", Access: Public},
		{Pattern: "/login", Access: GuestOnly},
		{Pattern: "/admin-login", Access: GuestOnly},
		{Pattern: "/register", Access: GuestOnly},
		{Pattern: "/dashboard", Access: Protected},
		{Pattern: "/courses", Access: Protected},
		{Pattern: "/courses/:id", Access: Protected},
		{Pattern: "/courses/:courseId/lessons/:lessonId", Access: Protected},
		{Pattern: "/profile", Access: Protected},
		{Pattern: "/admin", Access: Protected, Roles: []models.Role{models.RoleAdmin}},
	}
}

type Router struct {
	routes []Route
}

func NewRouter(routes []Route) *Router {
	return &Router{routes: routes}
}

// Resolve matches p against the table, first match wins, and applies the
// route's access rule to snap.
func (r *Router) Resolve(p string, snap session.Snapshot) Decision {
	p = normalize(p)
	for _, rt := range r.routes {
		params, ok := match(rt.Pattern, p)
		if !ok {
			continue
		}
		d := decide(rt, snap)
		d.Route = rt.Pattern
		d.Params = params
		return d
	}
	return Decision{Action: ActionNotFound}
}

func decide(rt Route, snap session.Snapshot) Decision {
	switch rt.Access {
	case Protected:
		return Check(snap, rt.Roles)
	case GuestOnly:
		if !snap.Hydrated {
			return Decision{Action: ActionLoading}
		}
		if snap.Authenticated() {
			return Decision{Action: ActionRedirect, Target: LandingPath}
		}
	}
	return Decision{Action: ActionRender}
}

func normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func match(pattern, p string) (map[string]string, bool) {
	want := split(pattern)
	got := split(p)
	if len(want) != len(got) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range want {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = got[i]
			continue
		}
		if seg != got[i] {
			return nil, false
		}
	}
	return params, true
}

func split(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
