package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mimamsa/internal/client/controller"
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/client/navigation"
	"github.com/dmitrijs2005/mimamsa/internal/client/services"
)

func (a *App) renderHome(ctx context.Context, st controller.State) error {
	books, err := a.catalog.ListBooks(ctx, st.IsAdmin(), a.filter)
	if err != nil {
		return a.report(err)
	}

	a.println(a.theme.title.Render("Library"))
	if !a.filter.Empty() {
		a.println(a.theme.muted.Render("Filtered: " + describeFilter(a.filter)))
	}
	if len(books) == 0 {
		a.println(a.theme.muted.Render("  No books found"))
		return nil
	}
	a.println(a.theme.muted.Render(fmt.Sprintf("%d books found", len(books))))
	for _, b := range books {
		a.println(a.bookLine(b))
	}
	return nil
}

func describeFilter(f services.BookFilter) string {
	var parts []string
	if len(f.Categories) > 0 {
		parts = append(parts, fmt.Sprintf("categories %v", f.Categories))
	}
	if len(f.Authors) > 0 {
		parts = append(parts, fmt.Sprintf("authors %v", f.Authors))
	}
	if len(f.Genres) > 0 {
		parts = append(parts, "genres "+strings.Join(f.Genres, ","))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		parts = append(parts, fmt.Sprintf("%q", q))
	}
	return strings.Join(parts, "; ")
}

// books searches the library. Without a query the search is cleared.
func (a *App) books(ctx context.Context, args []string) error {
	a.filter.Query = strings.Join(args, " ")
	return a.showHome(ctx)
}

// showHome renders Home, navigating there first unless it is already shown.
func (a *App) showHome(ctx context.Context) error {
	if a.ctl.Snapshot().Screen == navigation.Home {
		return a.render(ctx)
	}
	return a.goTo(ctx, navigation.Home, nil)
}

// setFilter narrows the listing by category, author or genre.
func (a *App) setFilter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listFilterOptions(ctx)
	}

	kind, values := strings.ToLower(args[0]), args[1:]
	switch kind {
	case "clear":
		a.filter = services.BookFilter{Query: a.filter.Query}
	case "category", "author":
		ids := make([]int64, 0, len(values))
		for _, v := range values {
			id, err := parseID(v)
			if err != nil {
				return a.report(err)
			}
			ids = append(ids, id)
		}
		if kind == "category" {
			a.filter.Categories = ids
		} else {
			a.filter.Authors = ids
		}
	case "genre":
		a.filter.Genres = append([]string(nil), values...)
	default:
		a.println("Usage: filter category|author|genre <values...> | filter clear")
		return nil
	}
	return a.showHome(ctx)
}

// listFilterOptions prints the values filter accepts.
func (a *App) listFilterOptions(ctx context.Context) error {
	cats, err := a.catalog.ListCategories(ctx)
	if err != nil {
		return a.report(err)
	}
	authors, err := a.catalog.ListAuthors(ctx)
	if err != nil {
		return a.report(err)
	}
	genres, err := a.catalog.ListGenres(ctx)
	if err != nil {
		return a.report(err)
	}

	a.println(a.theme.heading.Render("Categories"))
	for _, c := range cats {
		a.printf("  #%-4d %s\n", c.ID, c.Name)
	}
	a.println(a.theme.heading.Render("Authors"))
	for _, au := range authors {
		a.printf("  #%-4d %s\n", au.ID, au.Name)
	}
	a.println(a.theme.heading.Render("Genres"))
	for _, g := range genres {
		a.printf("  %-12s %s\n", g.Value, g.Label)
	}
	return nil
}

func (a *App) open(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: open <book id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		return a.report(err)
	}
	b, err := a.catalog.GetBook(ctx, a.ctl.Snapshot().IsAdmin(), id)
	if err != nil {
		return a.report(err)
	}
	return a.goTo(ctx, navigation.BookDetail, navigation.BookPayload{Book: *b})
}

// read opens the book shown on the current screen in the reader.
func (a *App) read(ctx context.Context, _ []string) error {
	bp, ok := a.ctl.Snapshot().Payload.(navigation.BookPayload)
	if !ok {
		a.println("Open a book first: open <book id>")
		return nil
	}
	return a.goTo(ctx, navigation.Reader, bp)
}

func (a *App) renderBookDetail(_ context.Context, st controller.State) error {
	b := st.Payload.(navigation.BookPayload).Book

	a.println(a.theme.title.Render(b.Title))
	if b.AuthorName != "" {
		a.println(a.theme.accent.Render("by " + b.AuthorName))
	}
	var badges []string
	for _, s := range []string{b.CategoryName, b.GenreDisplay, b.Language} {
		if s != "" {
			badges = append(badges, s)
		}
	}
	if b.PublishedYear != nil {
		badges = append(badges, strconv.Itoa(*b.PublishedYear))
	}
	if len(badges) > 0 {
		a.println(a.theme.muted.Render(strings.Join(badges, " · ")))
	}
	if b.IsPaid && b.Price != nil {
		a.println(a.theme.warning.Render(fmt.Sprintf("₹%.2f", *b.Price)))
	}
	if b.Description != "" {
		a.println()
		a.println(b.Description)
	}
	a.println()
	if b.Readable() {
		action := "Read Now"
		if b.IsPaid {
			action = "Buy & Read Now"
		}
		a.println(a.theme.muted.Render("Type 'read' to " + strings.ToLower(action) + "."))
	}
	return nil
}

func (a *App) renderReader(_ context.Context, st controller.State) error {
	b := st.Payload.(navigation.BookPayload).Book

	a.println(a.theme.title.Render(b.Title))
	if !b.Readable() {
		a.println(a.theme.err.Render("No file available"))
		a.println(a.theme.muted.Render("Please upload a PDF or EPUB file"))
		return nil
	}
	a.println(a.theme.muted.Render("Open the document in your viewer:"))
	a.println("  " + b.ContentURL)
	return nil
}

// admin panel

func (a *App) adminPanel(ctx context.Context, _ []string) error {
	return a.goTo(ctx, navigation.AdminPanel, nil)
}

func (a *App) renderAdminPanel(ctx context.Context, _ controller.State) error {
	books, err := a.catalog.ListBooks(ctx, true, services.BookFilter{})
	if err != nil {
		return a.report(err)
	}

	a.println(a.theme.title.Render("Admin Panel"))
	for _, b := range books {
		status := a.theme.success.Render("active")
		if !b.IsActive {
			status = a.theme.warning.Render("hidden")
		}
		a.println(a.bookLine(b) + " " + status)
	}
	a.println(a.theme.muted.Render("Commands: addbook, editbook <id>, toggle <id>, delbook <id>, authors, managepoems"))
	return nil
}

// toggleBook hides an active book or shows a hidden one.
func (a *App) toggleBook(ctx context.Context, args []string) error {
	b, err := a.bookArg(ctx, args)
	if err != nil || b == nil {
		return err
	}
	userID := a.ctl.Snapshot().Session.ID
	if err := a.catalog.SetBookActive(ctx, b.ID, userID, !b.IsActive); err != nil {
		return a.report(err)
	}
	if b.IsActive {
		a.println(a.theme.success.Render("Book hidden"))
	} else {
		a.println(a.theme.success.Render("Book activated"))
	}
	return a.render(ctx)
}

func (a *App) deleteBook(ctx context.Context, args []string) error {
	b, err := a.bookArg(ctx, args)
	if err != nil || b == nil {
		return err
	}
	answer, err := a.prompt(fmt.Sprintf("Delete %q? (y/N)", b.Title))
	if err != nil || !yes(answer) {
		return err
	}
	if err := a.catalog.DeleteBook(ctx, b.ID, a.ctl.Snapshot().Session.ID); err != nil {
		return a.report(err)
	}
	a.println(a.theme.success.Render("Book deleted"))
	return a.render(ctx)
}

// bookArg looks up the book named by the single id argument. A nil book
// with a nil error means usage was printed.
func (a *App) bookArg(ctx context.Context, args []string) (*models.Book, error) {
	if len(args) != 1 {
		a.println("Usage: <command> <book id>")
		return nil, nil
	}
	id, err := parseID(args[0])
	if err != nil {
		return nil, a.report(err)
	}
	b, err := a.catalog.GetBook(ctx, true, id)
	if err != nil {
		return nil, a.report(err)
	}
	return b, nil
}

// book form

func (a *App) addBook(ctx context.Context, _ []string) error {
	return a.goTo(ctx, navigation.AddBook, nil)
}

// editBook edits the book given by id, or the one on the current screen.
func (a *App) editBook(ctx context.Context, args []string) error {
	if len(args) > 0 {
		b, err := a.bookArg(ctx, args)
		if err != nil || b == nil {
			return err
		}
		return a.goTo(ctx, navigation.EditBook, navigation.BookPayload{Book: *b})
	}
	bp, ok := a.ctl.Snapshot().Payload.(navigation.BookPayload)
	if !ok {
		a.println("Usage: editbook <book id>")
		return nil
	}
	return a.goTo(ctx, navigation.EditBook, bp)
}

// renderBookForm runs the add or edit form and leaves the screen when done.
func (a *App) renderBookForm(ctx context.Context, st controller.State) error {
	var (
		book   models.Book
		bookID int64
	)
	if bp, ok := st.Payload.(navigation.BookPayload); ok {
		book, bookID = bp.Book, bp.Book.ID
		a.println(a.theme.title.Render("Edit Book"))
	} else {
		a.println(a.theme.title.Render("Add Book"))
	}

	in, err := a.bookForm(ctx, book)
	if err == nil {
		in.UserID = st.Session.ID
		err = a.catalog.SaveBook(ctx, bookID, in)
	}
	if err != nil {
		a.report(err)
		a.println(a.theme.muted.Render("Failed to save book"))
	} else if bookID == 0 {
		a.println(a.theme.success.Render("Book added successfully"))
	} else {
		a.println(a.theme.success.Render("Book updated successfully"))
	}

	if err := a.ctl.Back(); err != nil {
		return a.report(err)
	}
	return a.render(ctx)
}

// bookForm prompts for every book field, offering the values of b as
// defaults. Files given for cover or content are uploaded.
func (a *App) bookForm(ctx context.Context, b models.Book) (models.BookInput, error) {
	in := models.BookInput{
		Title:         b.Title,
		Description:   b.Description,
		Author:        b.Author,
		Category:      b.Category,
		FileType:      b.FileType,
		CoverImageURL: b.CoverImageURL,
		ContentURL:    b.ContentURL,
		Language:      b.Language,
		IsPaid:        b.IsPaid,
		Price:         b.Price,
		PublishedYear: b.PublishedYear,
	}
	if b.Genre != "" {
		g := b.Genre
		in.Genre = &g
	}

	ask := func(label, current string) (string, error) {
		if current != "" {
			label += " [" + current + "]"
		}
		v, err := a.prompt(label)
		if err != nil || v == "" {
			return current, err
		}
		return v, nil
	}

	var err error
	if in.Title, err = ask("Title", in.Title); err != nil {
		return in, err
	}
	if in.Description, err = ask("Description", in.Description); err != nil {
		return in, err
	}

	author, err := ask("Author id (blank for none)", idString(in.Author))
	if err != nil {
		return in, err
	}
	if in.Author, err = optionalID(author); err != nil {
		return in, err
	}
	category, err := ask("Category id (blank for none)", idString(in.Category))
	if err != nil {
		return in, err
	}
	if in.Category, err = optionalID(category); err != nil {
		return in, err
	}

	genre, err := ask("Genre value (blank for none)", deref(in.Genre))
	if err != nil {
		return in, err
	}
	in.Genre = nil
	if genre != "" {
		in.Genre = &genre
	}

	if in.Language, err = ask("Language", in.Language); err != nil {
		return in, err
	}
	year, err := ask("Published year", intString(in.PublishedYear))
	if err != nil {
		return in, err
	}
	in.PublishedYear = nil
	if year != "" {
		y, convErr := strconv.Atoi(year)
		if convErr != nil {
			return in, fmt.Errorf("invalid year %q", year)
		}
		in.PublishedYear = &y
	}

	paid, err := ask("Paid? (y/n)", yesNo(in.IsPaid))
	if err != nil {
		return in, err
	}
	in.IsPaid = yes(paid)
	if in.IsPaid {
		price, err := ask("Price", floatString(in.Price))
		if err != nil {
			return in, err
		}
		p, convErr := strconv.ParseFloat(price, 64)
		if convErr != nil {
			return in, fmt.Errorf("invalid price %q", price)
		}
		in.Price = &p
	}

	cover, err := a.prompt("Cover image file (blank to keep)")
	if err != nil {
		return in, err
	}
	if cover != "" {
		if in.CoverImageURL, err = a.catalog.UploadFile(ctx, models.UploadImage, cover); err != nil {
			return in, err
		}
		a.println(a.theme.success.Render("Cover image uploaded!"))
	}

	content, err := a.prompt("Content file (blank to keep)")
	if err != nil {
		return in, err
	}
	if content != "" {
		var kind models.UploadKind
		kind, in.FileType = contentKind(content)
		if in.ContentURL, err = a.catalog.UploadFile(ctx, kind, content); err != nil {
			return in, err
		}
		a.println(a.theme.success.Render("Content file uploaded!"))
	}
	return in, nil
}

// contentKind picks the upload endpoint and file type for a content file.
// Plain text has its own endpoint; every other document goes to the PDF one.
func contentKind(path string) (models.UploadKind, string) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "txt":
		return models.UploadText, "txt"
	case "pdf", "epub", "mobi":
		return models.UploadPDF, ext
	}
	return models.UploadPDF, "other"
}

func idString(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
