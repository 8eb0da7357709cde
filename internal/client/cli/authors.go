package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mimamsa/internal/client/controller"
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/client/navigation"
)

func (a *App) authors(ctx context.Context, _ []string) error {
	return a.goTo(ctx, navigation.ManageAuthors, nil)
}

func (a *App) renderManageAuthors(ctx context.Context, _ controller.State) error {
	authors, err := a.catalog.ListAuthors(ctx)
	if err != nil {
		return a.report(err)
	}

	a.println(a.theme.title.Render("Manage Authors"))
	if len(authors) == 0 {
		a.println(a.theme.muted.Render("  No authors yet"))
	}
	for _, au := range authors {
		line := fmt.Sprintf("  #%-4d %s", au.ID, au.Name)
		if au.Bio != "" {
			line += a.theme.muted.Render(" · " + au.Bio)
		}
		a.println(line)
	}
	a.println(a.theme.muted.Render("Commands: addauthor, editauthor <id>, delauthor <id>"))
	return nil
}

func (a *App) addAuthor(ctx context.Context, _ []string) error {
	return a.saveAuthor(ctx, models.Author{})
}

func (a *App) editAuthor(ctx context.Context, args []string) error {
	au, err := a.authorArg(ctx, args)
	if err != nil || au == nil {
		return err
	}
	return a.saveAuthor(ctx, *au)
}

// saveAuthor prompts for the author's fields, keeping current values on
// blank answers, and creates or updates it.
func (a *App) saveAuthor(ctx context.Context, au models.Author) error {
	name, err := a.prompt(withDefault("Author name", au.Name))
	if err != nil {
		return err
	}
	bio, err := a.prompt(withDefault("Bio", au.Bio))
	if err != nil {
		return err
	}
	photoFile, err := a.prompt("Photo file (blank to keep)")
	if err != nil {
		return err
	}

	in := models.AuthorInput{
		UserID: a.ctl.Snapshot().Session.ID,
		Name:   orDefault(name, au.Name),
		Bio:    orDefault(bio, au.Bio),
	}
	if au.PhotoURL != "" {
		in.PhotoURL = &au.PhotoURL
	}
	if photoFile != "" {
		url, err := a.catalog.UploadFile(ctx, models.UploadImage, photoFile)
		if err != nil {
			return a.report(err)
		}
		a.println(a.theme.success.Render("Photo uploaded!"))
		in.PhotoURL = &url
	}

	if err := a.catalog.SaveAuthor(ctx, au.ID, in); err != nil {
		return a.report(err)
	}
	if au.ID == 0 {
		a.println(a.theme.success.Render("Author added successfully"))
	} else {
		a.println(a.theme.success.Render("Author updated successfully"))
	}
	return a.render(ctx)
}

func (a *App) deleteAuthor(ctx context.Context, args []string) error {
	au, err := a.authorArg(ctx, args)
	if err != nil || au == nil {
		return err
	}
	answer, err := a.prompt(fmt.Sprintf("Delete author %q? (y/N)", au.Name))
	if err != nil || !yes(answer) {
		return err
	}
	if err := a.catalog.DeleteAuthor(ctx, au.ID, a.ctl.Snapshot().Session.ID); err != nil {
		return a.report(err)
	}
	a.println(a.theme.success.Render("Author deleted"))
	return a.render(ctx)
}

func (a *App) authorArg(ctx context.Context, args []string) (*models.Author, error) {
	if len(args) != 1 {
		a.println("Usage: <command> <author id>")
		return nil, nil
	}
	id, err := parseID(args[0])
	if err != nil {
		return nil, a.report(err)
	}
	authors, err := a.catalog.ListAuthors(ctx)
	if err != nil {
		return nil, a.report(err)
	}
	for i := range authors {
		if authors[i].ID == id {
			return &authors[i], nil
		}
	}
	return nil, a.report(fmt.Errorf("author #%d not found", id))
}

func withDefault(label, current string) string {
	if current == "" {
		return label
	}
	return label + " [" + current + "]"
}

func orDefault(v, current string) string {
	if v == "" {
		return current
	}
	return v
}
