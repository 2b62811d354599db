package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTimeout      = errors.New("request timed out")
	ErrBadResponse  = errors.New("malformed server response")
)

// ErrorKind classifies an HTTPError.
type ErrorKind string

const (
	KindStatus  ErrorKind = "status"
	KindNetwork ErrorKind = "network"
	KindTimeout ErrorKind = "timeout"
)

// HTTPError is returned for non-2xx responses and transport failures.
// Status is zero when no response was received.
type HTTPError struct {
	Status  int
	Message string
	Kind    ErrorKind
	Err     error
}

func (e *HTTPError) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindTimeout:
		return "request timed out"
	}
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() []error {
	errs := make([]error, 0, 3)
	switch {
	case e.Kind == KindTimeout:
		errs = append(errs, ErrTimeout, ErrUnavailable)
	case e.Kind == KindNetwork:
		errs = append(errs, ErrUnavailable)
	case e.Status == http.StatusUnauthorized:
		errs = append(errs, ErrUnauthorized)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status == code
	}
	return false
}

// ServerMessage extracts the server-supplied message from err, if any.
func ServerMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Kind == KindStatus {
		return httpErr.Message
	}
	return ""
}
