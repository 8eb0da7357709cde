package controller

import (
	"github.com/dmitrijs2005/mimamsa/internal/client/navigation"
)

// Navigate opens screen with payload, remembering the current one.
// Administrator screens are refused for other users.
func (c *Controller) Navigate(screen navigation.Screen, payload navigation.Payload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}
	if err := c.require(LoggedIn); err != nil {
		return err
	}
	if navigation.AdminOnly(navigation.Resolve(screen)) && !c.session.IsAdmin {
		return navigation.ErrForbidden
	}
	return c.nav.Navigate(screen, payload)
}

// Back returns to the previous screen, or Home when there is none.
func (c *Controller) Back() error {
	return c.local(
		func() error { return c.require(LoggedIn) },
		c.nav.Back)
}
