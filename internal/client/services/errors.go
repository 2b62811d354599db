package services

import (
	"errors"

	"github.com/dmitrijs2005/lmsclient/internal/client/client"
)

var (
	ErrNoPendingChallenge = errors.New("no pending code request")
	ErrInvalidCode        = errors.New("code must be exactly six digits")
	ErrRequestInFlight    = errors.New("request already in progress")
	ErrInvalidState       = errors.New("operation not allowed in current state")
	ErrMissingFields      = errors.New("required field missing")
	ErrRoleNotAllowed     = errors.New("role not offered by department")
	ErrNotSignedIn        = errors.New("not signed in")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// ErrorKind classifies a FlowError.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNetwork    ErrorKind = "network"
	KindTimeout    ErrorKind = "timeout"
	KindRejected   ErrorKind = "rejected"
)

const (
	msgNetwork = "Network error. Please try again."
	msgTimeout = "Request timed out. Please try again."
)

// FlowError is the user-facing outcome of a failed step. Message is safe to
// display as is. Status is the HTTP status for rejected requests.
type FlowError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Err     error
}

func (e *FlowError) Error() string { return e.Message }

func (e *FlowError) Unwrap() error { return e.Err }

func validationError(err error, msg string) *FlowError {
	return &FlowError{Kind: KindValidation, Message: msg, Err: err}
}

// toFlowError maps a client error to a FlowError. The server's message is
// used verbatim when present, otherwise fallback.
func toFlowError(err error, fallback string) *FlowError {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe
	}

	var he *client.HTTPError
	if errors.As(err, &he) {
		switch he.Kind {
		case client.KindTimeout:
			return &FlowError{Kind: KindTimeout, Message: msgTimeout, Err: err}
		case client.KindNetwork:
			return &FlowError{Kind: KindNetwork, Message: msgNetwork, Err: err}
		}
		msg := he.Message
		if msg == "" {
			msg = fallback
		}
		return &FlowError{Kind: KindRejected, Message: msg, Status: he.Status, Err: err}
	}

	return &FlowError{Kind: KindRejected, Message: fallback, Err: err}
}
