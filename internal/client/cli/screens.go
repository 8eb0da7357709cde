package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mimamsa/internal/client/controller"
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/client/navigation"
)

type renderer func(ctx context.Context, st controller.State) error

// screens maps every screen to its renderer.
func (a *App) screens() map[navigation.Screen]renderer {
	return map[navigation.Screen]renderer{
		navigation.Home:          a.renderHome,
		navigation.Profile:       a.renderProfile,
		navigation.Poems:         a.renderPoems,
		navigation.ManagePoems:   a.renderManagePoems,
		navigation.BookDetail:    a.renderBookDetail,
		navigation.Reader:        a.renderReader,
		navigation.AdminPanel:    a.renderAdminPanel,
		navigation.ManageAuthors: a.renderManageAuthors,
		navigation.AddBook:       a.renderBookForm,
		navigation.EditBook:      a.renderBookForm,
	}
}

// render draws the current screen. Anything without a renderer gets Home.
func (a *App) render(ctx context.Context) error {
	st := a.ctl.Snapshot()
	if st.Phase != controller.LoggedIn {
		return nil
	}
	r, ok := a.screens()[navigation.Resolve(st.Screen)]
	if !ok {
		r = a.renderHome
	}
	return r(ctx, st)
}

// goTo navigates and renders the new screen.
func (a *App) goTo(ctx context.Context, s navigation.Screen, p navigation.Payload) error {
	if err := a.ctl.Navigate(s, p); err != nil {
		return a.report(err)
	}
	return a.render(ctx)
}

func (a *App) home(ctx context.Context, _ []string) error {
	return a.goTo(ctx, navigation.Home, nil)
}

func (a *App) profile(ctx context.Context, _ []string) error {
	return a.goTo(ctx, navigation.Profile, nil)
}

func (a *App) back(ctx context.Context, _ []string) error {
	if err := a.ctl.Back(); err != nil {
		return a.report(err)
	}
	return a.render(ctx)
}

func (a *App) where(_ context.Context, _ []string) error {
	st := a.ctl.Snapshot()
	line := "Screen: " + st.Screen.String()
	if bp, ok := st.Payload.(navigation.BookPayload); ok {
		line += fmt.Sprintf(" (book #%d %s)", bp.Book.ID, bp.Book.Title)
	}
	a.println(line)
	a.println(a.theme.muted.Render(fmt.Sprintf("History depth: %d", st.Depth)))
	return nil
}

func (a *App) renderProfile(_ context.Context, st controller.State) error {
	s := st.Session
	a.println(a.theme.title.Render("Profile"))
	a.printf("  Username: %s\n", s.Username)
	a.printf("  Email:    %s\n", s.Email)
	if s.ProfilePhoto != "" {
		a.printf("  Photo:    %s\n", s.ProfilePhoto)
	}
	if s.IsAdmin {
		a.println("  " + a.theme.accent.Render("Administrator"))
	}
	a.println(a.theme.muted.Render("Type 'editprofile' to change your details."))
	return nil
}

// bookLine is one row of a book listing.
func (a *App) bookLine(b models.Book) string {
	var meta []string
	for _, m := range []string{b.AuthorName, b.CategoryName, b.GenreDisplay} {
		if m != "" {
			meta = append(meta, m)
		}
	}
	line := fmt.Sprintf("  #%-4d %s", b.ID, a.theme.text.Render(b.Title))
	if len(meta) > 0 {
		line += a.theme.muted.Render(" · " + strings.Join(meta, " · "))
	}
	if b.IsPaid && b.Price != nil {
		line += a.theme.warning.Render(fmt.Sprintf(" ₹%.2f", *b.Price))
	}
	return line
}
