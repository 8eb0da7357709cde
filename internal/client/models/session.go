// Package models holds the records exchanged with the Mimamsa backend and
// persisted locally.
package models

import "errors"

// ErrIncompleteSession marks a user record that lacks the fields needed to
// identify the account.
var ErrIncompleteSession = errors.New("incomplete session record")

// Session identifies the signed-in user. It is the user record returned by
// the backend on login, registration and profile update, stored verbatim.
type Session struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	IsAdmin      bool   `json:"is_admin"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}

// Validate reports whether s is user-shaped: a positive id and an email.
func (s *Session) Validate() error {
	if s == nil || s.ID <= 0 || s.Email == "" {
		return ErrIncompleteSession
	}
	return nil
}

// Clone returns an independent copy of s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// ProfileInput is the body of a profile update.
type ProfileInput struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}
