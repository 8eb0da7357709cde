package services

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/mimamsa/internal/client/models"
)

// BookFilter narrows the home screen listing. Each id/value list matches
// any of its members; non-empty lists and the query must all match.
type BookFilter struct {
	Categories []int64
	Authors    []int64
	Genres     []string
	Query      string
}

// Empty reports whether f lets every book through.
func (f BookFilter) Empty() bool {
	return len(f.Categories) == 0 && len(f.Authors) == 0 && len(f.Genres) == 0 &&
		strings.TrimSpace(f.Query) == ""
}

// FilterBooks returns the books matching f, preserving order. The input is
// not modified.
func FilterBooks(books []models.Book, f BookFilter) []models.Book {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Book, 0, len(books))

	for _, b := range books {
		if len(f.Categories) > 0 && (b.Category == nil || !slices.Contains(f.Categories, *b.Category)) {
			continue
		}
		if len(f.Authors) > 0 && (b.Author == nil || !slices.Contains(f.Authors, *b.Author)) {
			continue
		}
		if len(f.Genres) > 0 && !slices.Contains(f.Genres, b.Genre) {
			continue
		}
		if q != "" && !matchesQuery(b, q) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesQuery(b models.Book, q string) bool {
	for _, field := range []string{b.Title, b.AuthorName, b.CategoryName, b.GenreDisplay} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
