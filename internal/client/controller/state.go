package controller

import (
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/client/navigation"
)

// Phase is the top level of the authentication gate.
type Phase int

const (
	Booting Phase = iota
	LoggedOut
	LoggedIn
)

func (p Phase) String() string {
	switch p {
	case Booting:
		return "booting"
	case LoggedOut:
		return "logged out"
	case LoggedIn:
		return "logged in"
	}
	return "unknown"
}

// AuthView selects the form shown while logged out and no recovery is
// in progress.
type AuthView int

const (
	LoginView AuthView = iota
	RegisterView
)

func (v AuthView) String() string {
	if v == RegisterView {
		return "register"
	}
	return "login"
}

// Recovery is the password reset progress. Its values can only be advanced
// one step at a time through OTPSent and Verified, or dropped back to
// Inactive.
type Recovery interface {
	isRecovery()
	String() string
}

type Inactive struct{}

type AwaitingEmail struct{}

type AwaitingOTP struct {
	Email string
}

type AwaitingNewPassword struct {
	Email string
	OTP   string
}

func (Inactive) isRecovery()            {}
func (AwaitingEmail) isRecovery()       {}
func (AwaitingOTP) isRecovery()         {}
func (AwaitingNewPassword) isRecovery() {}

func (Inactive) String() string            { return "inactive" }
func (AwaitingEmail) String() string       { return "awaiting email" }
func (AwaitingOTP) String() string         { return "awaiting otp" }
func (AwaitingNewPassword) String() string { return "awaiting new password" }

// OTPSent records the address a code was sent to.
func (AwaitingEmail) OTPSent(email string) AwaitingOTP {
	return AwaitingOTP{Email: email}
}

// Verified records the accepted code.
func (s AwaitingOTP) Verified(otp string) AwaitingNewPassword {
	return AwaitingNewPassword{Email: s.Email, OTP: otp}
}

// State is a point-in-time copy of the controller for renderers. Changing
// it has no effect on the controller.
type State struct {
	Phase    Phase
	View     AuthView
	Recovery Recovery
	Session  *models.Session
	Screen   navigation.Screen
	Payload  navigation.Payload
	Depth    int
	Busy     bool
}

// IsAdmin reports whether the signed-in user may open administrator screens.
func (s State) IsAdmin() bool {
	return s.Session != nil && s.Session.IsAdmin
}
