package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/lmsclient/internal/client/guard"
)

// maxRedirects bounds redirect chains in Open.
const maxRedirects = 3

// Open runs the route guard for path and reports what the client would show.
func (a *App) Open(_ context.Context, path string) error {
	for i := 0; i <= maxRedirects; i++ {
		d := a.router.Resolve(path, a.store.Snapshot())
		switch d.Action {
		case guard.ActionLoading:
			printlnFn("Loading...")
			return nil
		case guard.ActionNotFound:
			printlnFn("Page not found:", path)
			return nil
		case guard.ActionRedirect:
			printlnFn(fmt.Sprintf("Redirecting %s -> %s", path, d.Target))
			path = d.Target
			continue
		default:
			printlnFn(describe(path, d))
			return nil
		}
	}
	return fmt.Errorf("too many redirects for %s", path)
}

func describe(path string, d guard.Decision) string {
	if len(d.Params) == 0 {
		return fmt.Sprintf("Showing %s", path)
	}
	keys := make([]string, 0, len(d.Params))
	for k := range d.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+d.Params[k])
	}
	return fmt.Sprintf("Showing %s (%s)", d.Route, strings.Join(pairs, ", "))
}
