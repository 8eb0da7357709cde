package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mimamsa/internal/client/controller"
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/client/navigation"
	"github.com/dmitrijs2005/mimamsa/internal/client/services"
)

func (a *App) poemList(ctx context.Context, _ []string) error {
	return a.goTo(ctx, navigation.Poems, nil)
}

func (a *App) renderPoems(ctx context.Context, _ controller.State) error {
	poems, err := a.poems.ListPoems(ctx)
	if err != nil {
		return a.report(err)
	}

	a.println(a.theme.title.Render("Poems"))
	if len(poems) == 0 {
		a.println(a.theme.muted.Render("  No poems yet"))
	}
	for _, p := range poems {
		a.println(a.poemLine(p))
	}
	a.println(a.theme.muted.Render("Commands: poem <id>, review <id>, unreview <id>"))
	return nil
}

func (a *App) poemLine(p models.Poem) string {
	line := fmt.Sprintf("  #%-4d %s", p.ID, a.theme.text.Render(p.Title))
	var meta []string
	for _, m := range []string{p.AuthorName, p.CategoryName} {
		if m != "" {
			meta = append(meta, m)
		}
	}
	if len(meta) > 0 {
		line += a.theme.muted.Render(" · " + strings.Join(meta, " · "))
	}
	return line
}

// poem prints a poem with its reviews.
func (a *App) poem(ctx context.Context, args []string) error {
	p, err := a.poemArg(ctx, args)
	if err != nil || p == nil {
		return err
	}

	a.println(a.theme.title.Render(p.Title))
	if p.AuthorName != "" {
		a.println(a.theme.accent.Render("by " + p.AuthorName))
	}
	a.println()
	a.println(p.Content)
	a.println()

	reviews, err := a.poems.ListReviews(ctx, p.ID)
	if err != nil {
		return a.report(err)
	}
	a.println(a.theme.heading.Render(fmt.Sprintf("Reviews (%d)", len(reviews))))
	for _, r := range reviews {
		line := "  " + a.theme.warning.Render(stars(r.Rating)) + " " + r.Username
		if r.Comment != "" {
			line += a.theme.muted.Render(": " + r.Comment)
		}
		a.println(line)
	}
	return nil
}

func stars(n int) string {
	n = max(services.MinRating-1, min(n, services.MaxRating))
	return strings.Repeat("★", n) + strings.Repeat("☆", services.MaxRating-n)
}

func (a *App) review(ctx context.Context, args []string) error {
	p, err := a.poemArg(ctx, args)
	if err != nil || p == nil {
		return err
	}
	rating, err := a.prompt(fmt.Sprintf("Rating for %q (%d-%d)", p.Title, services.MinRating, services.MaxRating))
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(rating)
	if err != nil {
		return a.report(fmt.Errorf("invalid rating %q", rating))
	}
	comment, err := a.prompt("Comment (optional)")
	if err != nil {
		return err
	}

	in := models.ReviewInput{UserID: a.ctl.Snapshot().Session.ID, Rating: n, Comment: comment}
	if err := a.poems.SubmitReview(ctx, p.ID, in); err != nil {
		return a.report(err)
	}
	a.println(a.theme.success.Render("Review submitted successfully!"))
	return nil
}

func (a *App) unreview(ctx context.Context, args []string) error {
	p, err := a.poemArg(ctx, args)
	if err != nil || p == nil {
		return err
	}
	if err := a.poems.DeleteMyReview(ctx, p.ID, a.ctl.Snapshot().Session.ID); err != nil {
		return a.report(err)
	}
	a.println(a.theme.success.Render("Review deleted successfully!"))
	return nil
}

func (a *App) poemArg(ctx context.Context, args []string) (*models.Poem, error) {
	if len(args) != 1 {
		a.println("Usage: <command> <poem id>")
		return nil, nil
	}
	id, err := parseID(args[0])
	if err != nil {
		return nil, a.report(err)
	}
	poems, err := a.poems.ListPoems(ctx)
	if err != nil {
		return nil, a.report(err)
	}
	for i := range poems {
		if poems[i].ID == id {
			return &poems[i], nil
		}
	}
	return nil, a.report(fmt.Errorf("poem #%d not found", id))
}

// poem management

func (a *App) managePoems(ctx context.Context, _ []string) error {
	return a.goTo(ctx, navigation.ManagePoems, nil)
}

func (a *App) renderManagePoems(ctx context.Context, _ controller.State) error {
	poems, err := a.poems.ListPoems(ctx)
	if err != nil {
		a.println(a.theme.err.Render("Failed to load data"))
		return err
	}
	cats, err := a.poems.ListPoemCategories(ctx)
	if err != nil {
		a.println(a.theme.err.Render("Failed to load data"))
		return err
	}

	a.println(a.theme.title.Render("Manage Poems"))
	for _, p := range poems {
		a.println(a.poemLine(p))
	}
	a.println(a.theme.heading.Render("Categories"))
	for _, c := range cats {
		line := fmt.Sprintf("  #%-4d %s %s", c.ID, c.Icon, c.Name)
		if c.Description != "" {
			line += a.theme.muted.Render(" · " + c.Description)
		}
		a.println(line)
	}
	a.println(a.theme.muted.Render("Commands: addpoem, editpoem <id>, delpoem <id>, addcategory"))
	return nil
}

func (a *App) addPoem(ctx context.Context, _ []string) error {
	return a.savePoem(ctx, models.Poem{})
}

func (a *App) editPoem(ctx context.Context, args []string) error {
	p, err := a.poemArg(ctx, args)
	if err != nil || p == nil {
		return err
	}
	return a.savePoem(ctx, *p)
}

func (a *App) savePoem(ctx context.Context, p models.Poem) error {
	title, err := a.prompt(withDefault("Title", p.Title))
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content (blank to keep)", a.out)
	if err != nil {
		return err
	}
	author, err := a.prompt(withDefault("Author id (blank for none)", idString(p.Author)))
	if err != nil {
		return err
	}
	category, err := a.prompt(withDefault("Category id (blank for none)", idString(p.Category)))
	if err != nil {
		return err
	}
	language, err := a.prompt(withDefault("Language", orDefault(p.Language, "Hindi")))
	if err != nil {
		return err
	}

	in := models.PoemInput{
		UserID:   a.ctl.Snapshot().Session.ID,
		Title:    strings.TrimSpace(orDefault(title, p.Title)),
		Content:  strings.TrimSpace(orDefault(content, p.Content)),
		Language: orDefault(language, orDefault(p.Language, "Hindi")),
	}
	if in.Author, err = optionalID(orDefault(author, idString(p.Author))); err != nil {
		return a.report(err)
	}
	if in.Category, err = optionalID(orDefault(category, idString(p.Category))); err != nil {
		return a.report(err)
	}

	if err := a.poems.SavePoem(ctx, p.ID, in); err != nil {
		return a.report(err)
	}
	if p.ID == 0 {
		a.println(a.theme.success.Render("Poem added successfully"))
	} else {
		a.println(a.theme.success.Render("Poem updated successfully"))
	}
	return a.render(ctx)
}

func (a *App) deletePoem(ctx context.Context, args []string) error {
	p, err := a.poemArg(ctx, args)
	if err != nil || p == nil {
		return err
	}
	answer, err := a.prompt(fmt.Sprintf("Delete %q? (y/N)", p.Title))
	if err != nil || !yes(answer) {
		return err
	}
	if err := a.poems.DeletePoem(ctx, p.ID, a.ctl.Snapshot().Session.ID); err != nil {
		a.println(a.theme.err.Render("Failed to delete poem"))
		return err
	}
	a.println(a.theme.success.Render("Poem deleted"))
	return a.render(ctx)
}

func (a *App) addPoemCategory(ctx context.Context, _ []string) error {
	name, err := a.prompt("Category name")
	if err != nil {
		return err
	}
	icon, err := a.prompt("Icon (optional)")
	if err != nil {
		return err
	}
	desc, err := a.prompt("Description (optional)")
	if err != nil {
		return err
	}

	in := models.PoemCategoryInput{UserID: a.ctl.Snapshot().Session.ID, Name: name, Icon: icon, Description: desc}
	if err := a.poems.AddPoemCategory(ctx, in); err != nil {
		return a.report(err)
	}
	a.println(a.theme.success.Render("Category added successfully"))
	return a.render(ctx)
}
