package endpoints

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrEndpointNotFound = errors.New("endpoint not found")
	ErrInvalidBaseURL   = errors.New("invalid API base URL")
)

// NotFoundError names the endpoint that failed to resolve.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("endpoint not found: %s", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrEndpointNotFound
}

// Resolver turns endpoint names into absolute URLs against a fixed base.
type Resolver struct {
	base string
}

// NewResolver validates baseURL and returns a Resolver bound to it.
// The base must be an absolute http or https URL; a trailing slash is dropped.
func NewResolver(baseURL string) (*Resolver, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	return &Resolver{base: strings.TrimRight(u.String(), "/")}, nil
}

// Base returns the normalized API base URL.
func (r *Resolver) Base() string {
	return r.base
}

// Resolve maps name to an absolute URL.
//
//   - "COURSES"            flat key
//   - "AUTH.LOGIN"         dotted two-level key
//   - "/api/courses/7"     literal API path
//   - anything else        appended verbatim to the base
//
// Unknown dotted keys return a *NotFoundError.
func (r *Resolver) Resolve(name string) (string, error) {
	if strings.Contains(name, ".") && !strings.Contains(name, "/") {
		path, err := lookupDotted(name)
		if err != nil {
			return "", err
		}
		return r.base + path, nil
	}

	if v, ok := table[name]; ok {
		if path, ok := v.(string); ok {
			return r.base + path, nil
		}
		// a bare group name is not an endpoint
		return "", &NotFoundError{Name: name}
	}

	return r.base + name, nil
}

// URL resolves a typed endpoint and appends path-escaped segments.
func (r *Resolver) URL(ep Endpoint, segments ...string) (string, error) {
	u, err := r.Resolve(string(ep))
	if err != nil {
		return "", err
	}
	for _, s := range segments {
		u += "/" + url.PathEscape(s)
	}
	return u, nil
}

func lookupDotted(name string) (string, error) {
	parts := strings.Split(name, ".")
	if len(parts) != 2 {
		return "", &NotFoundError{Name: name}
	}
	g, ok := table[parts[0]].(group)
	if !ok {
		return "", &NotFoundError{Name: name}
	}
	path, ok := g[parts[1]]
	if !ok {
		return "", &NotFoundError{Name: name}
	}
	return path, nil
}
