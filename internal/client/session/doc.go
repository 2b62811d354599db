// Package session holds the authenticated user and bearer token for the
// lifetime of the client process.
//
// A Store is created once at startup and passed explicitly to whatever needs
// it (auth flows, the route guard, the REPL). It keeps the session in memory,
// persists only the token through a credentials.Repository, and rebuilds the
// user on the next start with Hydrate. Observers register with Subscribe and
// are called after every change.
//
// The store never exposes a partial session: Get reports either a complete
// user+token pair or nothing.
package session
