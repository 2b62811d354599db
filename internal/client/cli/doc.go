// Package cli provides the interactive LMS command-line client.
//
// It wires configuration, logging, token storage, the REST client, the
// session store and the auth services, then runs a REPL. On start the
// persisted token is revalidated against the server; a dead server leaves
// the user signed out without discarding the token.
//
// Commands:
//   - register, login       OTP sign-in (code, 'resend' or 'back' at the code prompt)
//   - admin-login           password sign-in for administrators
//   - whoami, profile       show or edit the signed-in user
//   - passwd                change password
//   - open <path>           run the route guard for a client path
//   - logout, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
