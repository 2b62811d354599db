// Package services contains the application services of the LMS client.
//
// AuthFlow drives one OTP sequence (login or registration) as an explicit
// state machine: Idle, CodeRequested, Verified, Failed. AdminAuth is the
// single-step password login. ProfileService edits the signed-in user.
//
// All three share the same collaborators: a client.Client for the REST API,
// the session.Store that receives the session on success, a notify.Notifier
// for user-facing outcomes, and a logging.Logger. Every failure is returned
// as a *FlowError carrying the message to show the user.
package services
