// Package client contains the transport layer of the LMS client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the OTP auth calls (register/login request and verify, resend),
//     admin login, the department list, and profile calls.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that resolves
//     endpoint names, attaches a bearer token and a request ID, applies a
//     per-request timeout, and reports failures uniformly as *HTTPError.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every failed call yields an *HTTPError whose Kind is status, network or
// timeout. Callers can also match the sentinels with errors.Is:
// ErrUnauthorized (HTTP 401), ErrUnavailable (network or timeout),
// ErrTimeout, ErrBadResponse. Requests are never retried.
//
// See Also
//
//   - Interface:  Client, Requester
//   - HTTP impl:  HTTPClient
//   - DB helpers: InitDatabase, RunMigrations
package client
