// Package models defines client-side data models used by the LMS client.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Role is a user role as issued by the LMS API. Any value other than
// RoleAdmin is a learner-type role declared by a department.
type Role string

const RoleAdmin Role = "admin"

// Status is the account status.
type Status string

const (
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

// UserID is the server identifier of a user. The API emits either a number
// or a string depending on the backing store, so both are accepted.
type UserID string

func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

// MarshalJSON writes canonical decimal integers as numbers and everything
// else, including "007" and "+5", as strings.
func (id UserID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// User is the identity record returned by the auth endpoints.
type User struct {
	ID         UserID `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	Status     Status `json:"status,omitempty"`
	Bio        string `json:"bio,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasAnyRole reports whether the user's role is one of roles.
func (u User) HasAnyRole(roles []Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Overlay copies the non-empty fields of other into u. The ID is kept.
func (u *User) Overlay(other User) {
	if other.Name != "" {
		u.Name = other.Name
	}
	if other.Email != "" {
		u.Email = other.Email
	}
	if other.Role != "" {
		u.Role = other.Role
	}
	if other.Department != "" {
		u.Department = other.Department
	}
	if other.Status != "" {
		u.Status = other.Status
	}
	if other.Bio != "" {
		u.Bio = other.Bio
	}
	if other.AvatarURL != "" {
		u.AvatarURL = other.AvatarURL
	}
}

// ProfileUpdate carries the user-editable profile fields. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Empty reports whether the update changes nothing.
func (p ProfileUpdate) Empty() bool {
	return p.Name == nil && p.Bio == nil && p.AvatarURL == nil
}

// Apply merges the update into u.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
}
