package cli

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/mimamsa/internal/client/controller"
)

type command struct {
	run   handler
	usage string
	admin bool
}

func (a *App) loggedOutCommands() map[string]command {
	return map[string]command{
		"login":    {run: a.login, usage: "login"},
		"register": {run: a.register, usage: "register"},
		"forgot":   {run: a.forgot, usage: "forgot"},
		"cancel":   {run: a.cancel, usage: "cancel"},
	}
}

func (a *App) loggedInCommands() map[string]command {
	return map[string]command{
		"home":        {run: a.home, usage: "home"},
		"books":       {run: a.books, usage: "books [query]"},
		"filter":      {run: a.setFilter, usage: "filter category|author|genre <values...> | filter clear"},
		"open":        {run: a.open, usage: "open <book id>"},
		"read":        {run: a.read, usage: "read"},
		"profile":     {run: a.profile, usage: "profile"},
		"editprofile": {run: a.editProfile, usage: "editprofile"},
		"poems":       {run: a.poemList, usage: "poems"},
		"poem":        {run: a.poem, usage: "poem <id>"},
		"review":      {run: a.review, usage: "review <poem id>"},
		"unreview":    {run: a.unreview, usage: "unreview <poem id>"},
		"back":        {run: a.back, usage: "back"},
		"where":       {run: a.where, usage: "where"},
		"logout":      {run: a.logout, usage: "logout"},

		"admin":       {run: a.adminPanel, usage: "admin", admin: true},
		"toggle":      {run: a.toggleBook, usage: "toggle <book id>", admin: true},
		"delbook":     {run: a.deleteBook, usage: "delbook <book id>", admin: true},
		"addbook":     {run: a.addBook, usage: "addbook", admin: true},
		"editbook":    {run: a.editBook, usage: "editbook [book id]", admin: true},
		"authors":     {run: a.authors, usage: "authors", admin: true},
		"addauthor":   {run: a.addAuthor, usage: "addauthor", admin: true},
		"editauthor":  {run: a.editAuthor, usage: "editauthor <author id>", admin: true},
		"delauthor":   {run: a.deleteAuthor, usage: "delauthor <author id>", admin: true},
		"managepoems": {run: a.managePoems, usage: "managepoems", admin: true},
		"addpoem":     {run: a.addPoem, usage: "addpoem", admin: true},
		"editpoem":    {run: a.editPoem, usage: "editpoem <poem id>", admin: true},
		"delpoem":     {run: a.deletePoem, usage: "delpoem <poem id>", admin: true},
		"addcategory": {run: a.addPoemCategory, usage: "addcategory", admin: true},
	}
}

// commands returns the command set of the current state. Administrator
// commands are hidden from other users.
func (a *App) commands() map[string]command {
	st := a.ctl.Snapshot()
	if st.Phase != controller.LoggedIn {
		return a.loggedOutCommands()
	}
	all := a.loggedInCommands()
	if !st.IsAdmin() {
		for name, c := range all {
			if c.admin {
				delete(all, name)
			}
		}
	}
	return all
}

func (a *App) command(name string) (handler, bool) {
	c, ok := a.commands()[name]
	if !ok {
		return nil, false
	}
	return c.run, true
}

func (a *App) usage() string {
	cmds := a.commands()
	lines := make([]string, 0, len(cmds)+2)
	for _, c := range cmds {
		lines = append(lines, "  "+c.usage)
	}
	sort.Strings(lines)
	lines = append(lines, "  help", "  exit")
	return "Available commands:\n" + strings.Join(lines, "\n")
}
