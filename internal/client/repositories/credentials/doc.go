// Package credentials provides durable client-side storage for the session
// bearer token.
//
// # Overview
//
// The Repository interface is a tiny string key/value store. The session
// store keeps exactly one key in it (the bearer token); an absent key means
// no persisted session. The user record is never stored.
//
// Implementations
//
//   - SQLiteRepository  local file database (default), over dbx.DBTX
//   - RedisRepository   shared storage for kiosk-style deployments
//   - MemoryRepository  process-local, used by tests and -s memory
//
// Get returns ("", nil) for a missing key. Delete of a missing key succeeds.
package credentials
