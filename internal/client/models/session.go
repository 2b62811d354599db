package models

import (
	"strings"
	"time"
)

// Session is the authenticated user and bearer token pair held by the client.
// A session is either complete (both set) or absent.
type Session struct {
	User  User
	Token string
}

// Valid reports whether both halves of the session are present.
func (s Session) Valid() bool {
	return s.User.ID != "" && s.Token != ""
}

// AuthResult is the {user, token} body returned by verify and admin-login.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Session converts the result into a Session. The second value is false
// when the server response was missing either half.
func (r *AuthResult) Session() (Session, bool) {
	if r == nil || r.User == nil {
		return Session{}, false
	}
	s := Session{User: *r.User, Token: r.Token}
	return s, s.Valid()
}

// Purpose identifies which OTP sequence a code belongs to.
type Purpose string

const (
	PurposeLogin        Purpose = "login"
	PurposeRegistration Purpose = "registration"
)

// RegistrationProfile holds the candidate profile fields submitted with a
// registration code request. The server does not retain them between steps,
// so they are resubmitted at verification time.
type RegistrationProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
}

// Normalize trims surrounding whitespace from every field.
func (p RegistrationProfile) Normalize() RegistrationProfile {
	return RegistrationProfile{
		Name:       strings.TrimSpace(p.Name),
		Email:      strings.TrimSpace(p.Email),
		Role:       Role(strings.TrimSpace(string(p.Role))),
		Department: strings.TrimSpace(p.Department),
	}
}

// Challenge is an in-flight OTP request awaiting verification.
// It lives only in memory.
type Challenge struct {
	Email       string
	Purpose     Purpose
	Profile     *RegistrationProfile
	RequestedAt time.Time
}
