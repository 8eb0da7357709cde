package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/mimamsa/internal/client/client"
	"github.com/dmitrijs2005/mimamsa/internal/common"
)

var (
	// ErrInvalidTransition is returned when an action is not available in
	// the current state.
	ErrInvalidTransition = errors.New("action not available in current state")
	// ErrBusy is returned while another action is still running.
	ErrBusy = errors.New("another action is in progress")
	// ErrValidation matches input rejected before any request was sent.
	ErrValidation = common.ErrorValidation
)

// User facing messages.
const (
	MsgFillAllFields    = "Please fill all fields"
	MsgEnterEmail       = "Please enter your email"
	MsgEnterOTP         = "Please enter 6-digit OTP"
	MsgPasswordsDiffer  = "Passwords do not match"
	MsgPasswordTooShort = "Password must be at least 6 characters"

	MsgLoginFailed     = "Login failed. Please check credentials."
	MsgRegisterFailed  = "Registration failed"
	MsgSendOTPFailed   = "Failed to send OTP"
	MsgResendOTPFailed = "Failed to resend OTP"
	MsgInvalidOTP      = "Invalid OTP"
	MsgResetFailed     = "Failed to reset password"
	MsgProfileFailed   = "Failed to update profile"
)

const (
	otpLength         = 6
	minPasswordLength = 6
)

// Notice is an error carrying the text to show the user.
type Notice struct {
	Message string
	Err     error
}

func (n *Notice) Error() string {
	return n.Message
}

func (n *Notice) Unwrap() error {
	return n.Err
}

func invalid(msg string) error {
	return &Notice{Message: msg, Err: ErrValidation}
}

// failure turns a failed backend call into a Notice. The server's own
// message wins; transport failures get a network error; anything else gets
// the fallback.
func failure(err error, fallback string) error {
	if msg, ok := client.ServerMessage(err); ok {
		return &Notice{Message: msg, Err: err}
	}
	if errors.Is(err, client.ErrUnavailable) || errors.Is(err, client.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return &Notice{Message: "Network Error: " + networkCause(err), Err: err}
	}
	return &Notice{Message: fallback, Err: err}
}

func networkCause(err error) string {
	if errors.Is(err, client.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return client.ErrTimeout.Error()
	}
	prefix := client.ErrUnavailable.Error() + ": "
	for e := err; e != nil; e = errors.Unwrap(e) {
		if msg := e.Error(); strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return err.Error()
}
