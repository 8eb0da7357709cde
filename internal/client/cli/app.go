package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/mimamsa/internal/client/controller"
	"github.com/dmitrijs2005/mimamsa/internal/client/services"
	"github.com/dmitrijs2005/mimamsa/internal/logging"
)

// App is the interactive client. It renders the controller's state and
// turns commands into controller calls; it never changes state itself.
type App struct {
	ctl     *controller.Controller
	auth    services.AuthService
	catalog services.CatalogService
	poems   services.PoemService
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
	theme  theme

	filter services.BookFilter
}

func NewApp(ctl *controller.Controller, auth services.AuthService, catalog services.CatalogService,
	poems services.PoemService, log logging.Logger) *App {
	return &App{
		ctl:     ctl,
		auth:    auth,
		catalog: catalog,
		poems:   poems,
		log:     log.With("component", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		theme:   newTheme(),
	}
}

// Run restores the previous session and serves commands from stdin until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.auth.Close(ctx)

	if err := a.auth.Ping(ctx); err != nil {
		a.log.Warn(ctx, "backend not reachable", "error", err)
		a.println(a.theme.warning.Render("Server is not reachable, requests may fail."))
	}

	if err := a.ctl.Boot(ctx); err != nil {
		return err
	}

	a.println(a.theme.title.Render("Mimamsa") + a.theme.muted.Render(" (type 'help' for commands)"))
	if a.isLoggedIn() {
		a.println(a.theme.success.Render("Welcome back, " + a.ctl.Snapshot().Session.Username + "!"))
		a.render(ctx)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(lineReader{a.reader}))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.ctl.Snapshot().Phase == controller.LoggedIn
}

// status is shown in the prompt.
func (a *App) status() string {
	st := a.ctl.Snapshot()
	switch st.Phase {
	case controller.LoggedIn:
		return fmt.Sprintf("(%s %s)", st.Session.Username, st.Screen)
	case controller.LoggedOut:
		if _, ok := st.Recovery.(controller.Inactive); !ok {
			return fmt.Sprintf("(reset: %s)", st.Recovery)
		}
		return fmt.Sprintf("(%s)", st.View)
	}
	return ""
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

// report prints err for the user and returns it. Notices carry their own
// wording; other errors are printed as is.
func (a *App) report(err error) error {
	if err == nil {
		return nil
	}
	var n *controller.Notice
	switch {
	case errors.As(err, &n):
		a.println(a.theme.err.Render(n.Message))
	case errors.Is(err, controller.ErrBusy):
		a.println(a.theme.warning.Render("Please wait, the previous action is still running."))
	case errors.Is(err, controller.ErrInvalidTransition):
		a.println(a.theme.warning.Render("That is not available right now."))
	default:
		a.println(a.theme.err.Render("Error: " + err.Error()))
	}
	return err
}
