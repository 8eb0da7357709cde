package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/mimamsa/internal/client/controller"
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/client/services"
	"github.com/dmitrijs2005/mimamsa/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readSecret reads a password and returns it as a string, wiping the raw
// bytes.
func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// login prompts for credentials and signs in.
func (a *App) login(ctx context.Context, _ []string) error {
	if a.ctl.Snapshot().View == controller.RegisterView {
		if err := a.ctl.SwitchToLogin(); err != nil {
			return a.report(err)
		}
	}

	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	if err := a.ctl.Login(ctx, email, password); err != nil {
		return a.report(err)
	}
	a.println(a.theme.success.Render("Welcome, " + a.ctl.Snapshot().Session.Username + "!"))
	return a.render(ctx)
}

// register prompts for the new account's details. The backend either
// signs the user in right away or asks for a login.
func (a *App) register(ctx context.Context, _ []string) error {
	if a.ctl.Snapshot().View == controller.LoginView {
		if err := a.ctl.SwitchToRegister(); err != nil {
			return a.report(err)
		}
	}

	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	username, err := a.prompt("Choose a username")
	if err != nil {
		return err
	}
	password, err := a.readSecret("Choose a password")
	if err != nil {
		return err
	}

	if err := a.ctl.Register(ctx, email, username, password); err != nil {
		return a.report(err)
	}
	if a.isLoggedIn() {
		a.println(a.theme.success.Render("Account created. Welcome, " + username + "!"))
		return a.render(ctx)
	}
	a.println(a.theme.success.Render("Registered successfully! Please login now."))
	return nil
}

// forgot walks through the password reset. It starts the flow if needed
// and then runs the current step, moving on while steps succeed. After a
// failure, running it again resumes at the same step.
func (a *App) forgot(ctx context.Context, _ []string) error {
	st := a.ctl.Snapshot()
	if _, ok := st.Recovery.(controller.Inactive); ok {
		if st.View == controller.RegisterView {
			if err := a.ctl.BackToLogin(); err != nil {
				return a.report(err)
			}
		}
		if err := a.ctl.ForgotPassword(); err != nil {
			return a.report(err)
		}
		a.println(a.theme.heading.Render("Reset password") + a.theme.muted.Render(" (type 'cancel' to go back to login)"))
	}

	for {
		switch step := a.ctl.Snapshot().Recovery.(type) {
		case controller.AwaitingEmail:
			email, err := a.prompt("Enter your account email")
			if err != nil {
				return err
			}
			if err := a.ctl.SendOTP(ctx, email); err != nil {
				return a.report(err)
			}
			a.println(a.theme.success.Render("OTP sent to your email!"))

		case controller.AwaitingOTP:
			otp, err := a.prompt("Enter the 6-digit OTP sent to " + step.Email + " (or 'resend')")
			if err != nil {
				return err
			}
			if strings.EqualFold(otp, "resend") {
				if err := a.ctl.ResendOTP(ctx); err != nil {
					return a.report(err)
				}
				a.println(a.theme.success.Render("OTP resent to your email!"))
				continue
			}
			if err := a.ctl.VerifyOTP(ctx, otp); err != nil {
				return a.report(err)
			}

		case controller.AwaitingNewPassword:
			pw, err := a.readSecret("New password")
			if err != nil {
				return err
			}
			confirm, err := a.readSecret("Confirm password")
			if err != nil {
				return err
			}
			if err := a.ctl.ResetPassword(ctx, pw, confirm); err != nil {
				return a.report(err)
			}
			a.println(a.theme.success.Render("Password reset successfully! Please login."))
			return nil

		default:
			return nil
		}
	}
}

// cancel abandons the password reset or registration form.
func (a *App) cancel(_ context.Context, _ []string) error {
	if err := a.ctl.BackToLogin(); err != nil {
		return a.report(err)
	}
	a.println(a.theme.muted.Render("Back to login."))
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.ctl.Logout(ctx); err != nil {
		return a.report(err)
	}
	a.filter = services.BookFilter{}
	a.println(a.theme.muted.Render("Logged out."))
	return nil
}

// editProfile prompts for new profile values. Blank answers keep the
// current ones; a photo path is uploaded first.
func (a *App) editProfile(ctx context.Context, _ []string) error {
	s := a.ctl.Snapshot().Session
	in := models.ProfileInput{Username: s.Username, Email: s.Email, ProfilePhoto: s.ProfilePhoto}

	username, err := a.prompt("Username [" + s.Username + "]")
	if err != nil {
		return err
	}
	email, err := a.prompt("Email [" + s.Email + "]")
	if err != nil {
		return err
	}
	photo, err := a.prompt("Profile photo file (blank to keep)")
	if err != nil {
		return err
	}

	if username != "" {
		in.Username = username
	}
	if email != "" {
		in.Email = email
	}
	if photo != "" {
		url, err := a.catalog.UploadFile(ctx, models.UploadImage, photo)
		if err != nil {
			return a.report(err)
		}
		a.println(a.theme.success.Render("Profile photo uploaded!"))
		in.ProfilePhoto = url
	}

	if err := a.ctl.UpdateProfile(ctx, in); err != nil {
		return a.report(err)
	}
	a.println(a.theme.success.Render("Profile updated successfully!"))
	return a.render(ctx)
}
