package controller

import (
	"context"
)

// ForgotPassword leaves the login form for the email step of the reset.
func (c *Controller) ForgotPassword() error {
	return c.local(
		func() error { return c.requireForm(LoginView) },
		func() { c.recovery = AwaitingEmail{} })
}

// SendOTP asks the backend to mail a code to email and moves on to the
// code step.
func (c *Controller) SendOTP(ctx context.Context, email string) error {
	var step AwaitingEmail
	return c.transition(ctx,
		func() error {
			var ok bool
			if step, ok = c.recovery.(AwaitingEmail); !ok || c.phase != LoggedOut {
				return ErrInvalidTransition
			}
			if blank(email) {
				return invalid(MsgEnterEmail)
			}
			return nil
		},
		func(ctx context.Context) (func(), error) {
			if err := c.auth.SendOTP(ctx, email); err != nil {
				c.log.Warn(ctx, "otp not sent", "email", email, "error", err)
				return nil, failure(err, MsgSendOTPFailed)
			}
			return func() {
				c.recovery = step.OTPSent(email)
				c.log.Info(ctx, "otp sent", "email", email)
			}, nil
		})
}

// ResendOTP mails a fresh code to the address of the current reset.
func (c *Controller) ResendOTP(ctx context.Context) error {
	var step AwaitingOTP
	return c.transition(ctx,
		func() error {
			var ok bool
			if step, ok = c.recovery.(AwaitingOTP); !ok || c.phase != LoggedOut {
				return ErrInvalidTransition
			}
			return nil
		},
		func(ctx context.Context) (func(), error) {
			if err := c.auth.SendOTP(ctx, step.Email); err != nil {
				c.log.Warn(ctx, "otp not resent", "email", step.Email, "error", err)
				return nil, failure(err, MsgResendOTPFailed)
			}
			return func() {}, nil
		})
}

// VerifyOTP checks the code with the backend and moves on to the new
// password step.
func (c *Controller) VerifyOTP(ctx context.Context, otp string) error {
	var step AwaitingOTP
	return c.transition(ctx,
		func() error {
			var ok bool
			if step, ok = c.recovery.(AwaitingOTP); !ok || c.phase != LoggedOut {
				return ErrInvalidTransition
			}
			if !validOTP(otp) {
				return invalid(MsgEnterOTP)
			}
			return nil
		},
		func(ctx context.Context) (func(), error) {
			if err := c.auth.VerifyOTP(ctx, step.Email, otp); err != nil {
				c.log.Warn(ctx, "otp rejected", "email", step.Email, "error", err)
				return nil, failure(err, MsgInvalidOTP)
			}
			return func() {
				c.recovery = step.Verified(otp)
			}, nil
		})
}

// ResetPassword sets the new password and returns to the login form.
func (c *Controller) ResetPassword(ctx context.Context, newPassword, confirm string) error {
	var step AwaitingNewPassword
	return c.transition(ctx,
		func() error {
			var ok bool
			if step, ok = c.recovery.(AwaitingNewPassword); !ok || c.phase != LoggedOut {
				return ErrInvalidTransition
			}
			switch {
			case newPassword == "" || confirm == "":
				return invalid(MsgFillAllFields)
			case newPassword != confirm:
				return invalid(MsgPasswordsDiffer)
			case len(newPassword) < minPasswordLength:
				return invalid(MsgPasswordTooShort)
			}
			return nil
		},
		func(ctx context.Context) (func(), error) {
			if err := c.auth.ResetPassword(ctx, step.Email, step.OTP, newPassword); err != nil {
				c.log.Warn(ctx, "password reset failed", "email", step.Email, "error", err)
				return nil, failure(err, MsgResetFailed)
			}
			return func() {
				c.recovery = Inactive{}
				c.view = LoginView
				c.log.Info(ctx, "password reset", "email", step.Email)
			}, nil
		})
}

// BackToLogin abandons the reset or the registration form.
func (c *Controller) BackToLogin() error {
	return c.local(
		func() error { return c.require(LoggedOut) },
		func() {
			c.recovery = Inactive{}
			c.view = LoginView
		})
}

func validOTP(otp string) bool {
	if len(otp) != otpLength {
		return false
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
