// Package navigation models the authenticated area's screens and the
// history stack used to move between them.
package navigation

import "strings"

// Screen identifies a view of the authenticated area.
type Screen int

const (
	Home Screen = iota
	Profile
	Poems
	ManagePoems
	BookDetail
	Reader
	AdminPanel
	ManageAuthors
	AddBook
	EditBook

	screenCount
)

var screenNames = [...]string{
	Home:          "home",
	Profile:       "profile",
	Poems:         "poems",
	ManagePoems:   "managePoems",
	BookDetail:    "bookDetail",
	Reader:        "reader",
	AdminPanel:    "adminPanel",
	ManageAuthors: "manageAuthors",
	AddBook:       "addBook",
	EditBook:      "editBook",
}

func (s Screen) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return screenNames[s]
}

// Valid reports whether s is one of the known screens.
func (s Screen) Valid() bool {
	return s >= 0 && s < screenCount
}

// ParseScreen looks a screen up by name, ignoring case.
func ParseScreen(name string) (Screen, bool) {
	for i, n := range screenNames {
		if strings.EqualFold(n, name) {
			return Screen(i), true
		}
	}
	return Home, false
}

// Resolve maps any identifier to a renderable screen. Unknown values fall
// back to Home.
func Resolve(s Screen) Screen {
	if !s.Valid() {
		return Home
	}
	return s
}

// AdminOnly reports whether s is reserved for administrators.
func AdminOnly(s Screen) bool {
	switch s {
	case AdminPanel, ManageAuthors, AddBook, EditBook, ManagePoems:
		return true
	}
	return false
}

// NeedsBook reports whether s is opened on a specific book.
func NeedsBook(s Screen) bool {
	switch s {
	case BookDetail, Reader, EditBook:
		return true
	}
	return false
}
