// Package controller owns the signed-in/signed-out distinction, the password
// recovery flow and the screen history of the authenticated area. Screens
// drive it only through its methods and read it through Snapshot.
package controller

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/client/navigation"
	"github.com/dmitrijs2005/mimamsa/internal/client/services"
	"github.com/dmitrijs2005/mimamsa/internal/logging"
)

// SessionStore persists the signed-in user. session.Manager satisfies it.
type SessionStore interface {
	Load(ctx context.Context) (*models.Session, bool)
	Save(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error
}

// Controller is the application state machine. It is safe for concurrent
// use, but runs one action at a time: a call made while another is in
// flight fails with ErrBusy. Backend and storage calls run without holding
// the lock so Snapshot stays responsive.
type Controller struct {
	auth     services.AuthService
	sessions SessionStore
	log      logging.Logger

	mu       sync.Mutex
	busy     bool
	phase    Phase
	view     AuthView
	recovery Recovery
	session  *models.Session
	nav      *navigation.Navigator
}

func New(auth services.AuthService, sessions SessionStore, log logging.Logger) *Controller {
	return &Controller{
		auth:     auth,
		sessions: sessions,
		log:      log.With("component", "controller"),
		phase:    Booting,
		recovery: Inactive{},
		nav:      navigation.NewNavigator(),
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	screen, payload := c.nav.Current()
	return State{
		Phase:    c.phase,
		View:     c.view,
		Recovery: c.recovery,
		Session:  c.session.Clone(),
		Screen:   screen,
		Payload:  payload,
		Depth:    c.nav.Depth(),
		Busy:     c.busy,
	}
}

// Boot restores a persisted session, if any. It is the only way out of
// Booting.
func (c *Controller) Boot(ctx context.Context) error {
	return c.transition(ctx,
		func() error { return c.require(Booting) },
		func(ctx context.Context) (func(), error) {
			s, ok := c.sessions.Load(ctx)
			return func() {
				if ok {
					c.signIn(s)
					c.log.Info(ctx, "session restored", "user_id", s.ID)
					return
				}
				c.signOut()
				c.log.Info(ctx, "no stored session")
			}, nil
		})
}

// transition runs one action. guard checks the current state under the
// lock; call then runs unlocked and returns the commit to apply, again
// under the lock. Nothing changes when guard or call fail.
func (c *Controller) transition(ctx context.Context, guard func() error, call func(ctx context.Context) (func(), error)) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	if err := guard(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.busy = true
	c.mu.Unlock()

	commit, err := call(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		return err
	}
	commit()
	return nil
}

// local runs an action with no backend or storage call.
func (c *Controller) local(guard func() error, commit func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrBusy
	}
	if err := guard(); err != nil {
		return err
	}
	commit()
	return nil
}

func (c *Controller) require(p Phase) error {
	if c.phase != p {
		return ErrInvalidTransition
	}
	return nil
}

// requireForm checks that the logged-out form v is showing, with no
// recovery in progress.
func (c *Controller) requireForm(v AuthView) error {
	if c.phase != LoggedOut || c.view != v {
		return ErrInvalidTransition
	}
	if _, ok := c.recovery.(Inactive); !ok {
		return ErrInvalidTransition
	}
	return nil
}

// signIn enters the authenticated area on Home with an empty history.
func (c *Controller) signIn(s *models.Session) {
	c.phase = LoggedIn
	c.session = s.Clone()
	c.recovery = Inactive{}
	c.view = LoginView
	c.nav.Reset()
}

// signOut shows the login form with no session, flow or history.
func (c *Controller) signOut() {
	c.phase = LoggedOut
	c.session = nil
	c.recovery = Inactive{}
	c.view = LoginView
	c.nav.Reset()
}
