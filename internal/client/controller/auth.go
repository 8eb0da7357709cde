package controller

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/mimamsa/internal/client/models"
)

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// Login signs in from the login form. The session is written before the
// controller reports LoggedIn.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	return c.transition(ctx,
		func() error {
			if err := c.requireForm(LoginView); err != nil {
				return err
			}
			if blank(email, password) {
				return invalid(MsgFillAllFields)
			}
			return nil
		},
		func(ctx context.Context) (func(), error) {
			s, err := c.auth.Login(ctx, email, password)
			if err != nil {
				c.log.Warn(ctx, "login failed", "email", email, "error", err)
				return nil, failure(err, MsgLoginFailed)
			}
			c.persist(ctx, s)
			return func() {
				c.signIn(s)
				c.log.Info(ctx, "user logged in", "user_id", s.ID, "is_admin", s.IsAdmin)
			}, nil
		})
}

// Register creates an account from the registration form. When the backend
// answers with the new user the controller signs in right away; otherwise
// it returns to the login form.
func (c *Controller) Register(ctx context.Context, email, username, password string) error {
	return c.transition(ctx,
		func() error {
			if err := c.requireForm(RegisterView); err != nil {
				return err
			}
			if blank(email, username, password) {
				return invalid(MsgFillAllFields)
			}
			return nil
		},
		func(ctx context.Context) (func(), error) {
			s, err := c.auth.Register(ctx, email, username, password)
			if err != nil {
				c.log.Warn(ctx, "registration failed", "email", email, "error", err)
				return nil, failure(err, MsgRegisterFailed)
			}
			if s == nil {
				return func() {
					c.view = LoginView
					c.log.Info(ctx, "user registered, login required", "email", email)
				}, nil
			}
			c.persist(ctx, s)
			return func() {
				c.signIn(s)
				c.log.Info(ctx, "user registered", "user_id", s.ID)
			}, nil
		})
}

func (c *Controller) SwitchToRegister() error {
	return c.local(
		func() error { return c.requireForm(LoginView) },
		func() { c.view = RegisterView })
}

func (c *Controller) SwitchToLogin() error {
	return c.local(
		func() error { return c.requireForm(RegisterView) },
		func() { c.view = LoginView })
}

// UpdateProfile saves the profile and replaces the session with the record
// the backend returns.
func (c *Controller) UpdateProfile(ctx context.Context, in models.ProfileInput) error {
	var userID int64
	return c.transition(ctx,
		func() error {
			if err := c.require(LoggedIn); err != nil {
				return err
			}
			if blank(in.Username, in.Email) {
				return invalid(MsgFillAllFields)
			}
			userID = c.session.ID
			return nil
		},
		func(ctx context.Context) (func(), error) {
			s, err := c.auth.UpdateProfile(ctx, userID, in)
			if err != nil {
				c.log.Warn(ctx, "profile update failed", "user_id", userID, "error", err)
				return nil, failure(err, MsgProfileFailed)
			}
			c.persist(ctx, s)
			return func() {
				c.session = s.Clone()
				c.log.Info(ctx, "profile updated", "user_id", s.ID)
			}, nil
		})
}

// Logout clears the stored session and the screen history. The controller
// signs out even if the store cannot be cleared.
func (c *Controller) Logout(ctx context.Context) error {
	var userID int64
	return c.transition(ctx,
		func() error {
			if err := c.require(LoggedIn); err != nil {
				return err
			}
			userID = c.session.ID
			return nil
		},
		func(ctx context.Context) (func(), error) {
			if err := c.sessions.Clear(ctx); err != nil {
				c.log.Error(ctx, "stored session not cleared on logout", "user_id", userID, "error", err)
			}
			return func() {
				c.signOut()
				c.log.Info(ctx, "user logged out", "user_id", userID)
			}, nil
		})
}

// persist writes s and waits for the result. A failed write only costs
// the session on the next start, so it is logged and the action proceeds.
func (c *Controller) persist(ctx context.Context, s *models.Session) {
	if err := c.sessions.Save(ctx, s); err != nil {
		c.log.Warn(ctx, "continuing without a stored session", "user_id", s.ID, "error", err)
	}
}
