package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/mimamsa/internal/client/client"
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/common"
)

// CatalogService serves the book, author and upload screens.
type CatalogService interface {
	ListBooks(ctx context.Context, showAll bool, f BookFilter) ([]models.Book, error)
	GetBook(ctx context.Context, showAll bool, bookID int64) (*models.Book, error)
	// SaveBook creates a book when bookID is zero and updates it otherwise.
	SaveBook(ctx context.Context, bookID int64, in models.BookInput) error
	SetBookActive(ctx context.Context, bookID, userID int64, active bool) error
	DeleteBook(ctx context.Context, bookID, userID int64) error

	ListAuthors(ctx context.Context) ([]models.Author, error)
	// SaveAuthor creates an author when authorID is zero and updates it otherwise.
	SaveAuthor(ctx context.Context, authorID int64, in models.AuthorInput) error
	DeleteAuthor(ctx context.Context, authorID, userID int64) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)

	// UploadFile sends a local file to the upload endpoint for kind and
	// returns its public URL.
	UploadFile(ctx context.Context, kind models.UploadKind, path string) (string, error)
}

type catalogService struct {
	client client.CatalogAPI
}

func NewCatalogService(client client.CatalogAPI) CatalogService {
	return &catalogService{client: client}
}

func (c *catalogService) ListBooks(ctx context.Context, showAll bool, f BookFilter) ([]models.Book, error) {
	books, err := c.client.ListBooks(ctx, showAll)
	if err != nil {
		return nil, fmt.Errorf("list books error: %w", err)
	}
	return FilterBooks(books, f), nil
}

// GetBook finds a book in the listing. The backend has no single-book
// endpoint, so the lookup scans the same list the home screen shows.
func (c *catalogService) GetBook(ctx context.Context, showAll bool, bookID int64) (*models.Book, error) {
	books, err := c.client.ListBooks(ctx, showAll)
	if err != nil {
		return nil, fmt.Errorf("get book error: %w", err)
	}
	for i := range books {
		if books[i].ID == bookID {
			return &books[i], nil
		}
	}
	return nil, fmt.Errorf("book %d: %w", bookID, common.ErrorNotFound)
}

func (c *catalogService) SaveBook(ctx context.Context, bookID int64, in models.BookInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return fmt.Errorf("%w: please enter a book title", common.ErrorValidation)
	}
	if in.FileType == "" {
		in.FileType = "pdf"
	}
	if in.Language == "" {
		in.Language = "Hindi"
	}
	if !in.IsPaid {
		in.Price = nil
	}

	var err error
	if bookID == 0 {
		err = c.client.CreateBook(ctx, in)
	} else {
		err = c.client.UpdateBook(ctx, bookID, in)
	}
	if err != nil {
		return fmt.Errorf("save book error: %w", err)
	}
	return nil
}

func (c *catalogService) SetBookActive(ctx context.Context, bookID, userID int64, active bool) error {
	if err := c.client.SetBookActive(ctx, bookID, userID, active); err != nil {
		return fmt.Errorf("set book active error: %w", err)
	}
	return nil
}

func (c *catalogService) DeleteBook(ctx context.Context, bookID, userID int64) error {
	if err := c.client.DeleteBook(ctx, bookID, userID); err != nil {
		return fmt.Errorf("delete book error: %w", err)
	}
	return nil
}

func (c *catalogService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	authors, err := c.client.ListAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors error: %w", err)
	}
	return authors, nil
}

func (c *catalogService) SaveAuthor(ctx context.Context, authorID int64, in models.AuthorInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: please enter author name", common.ErrorValidation)
	}

	var err error
	if authorID == 0 {
		err = c.client.CreateAuthor(ctx, in)
	} else {
		err = c.client.UpdateAuthor(ctx, authorID, in)
	}
	if err != nil {
		return fmt.Errorf("save author error: %w", err)
	}
	return nil
}

func (c *catalogService) DeleteAuthor(ctx context.Context, authorID, userID int64) error {
	if err := c.client.DeleteAuthor(ctx, authorID, userID); err != nil {
		return fmt.Errorf("delete author error: %w", err)
	}
	return nil
}

func (c *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := c.client.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories error: %w", err)
	}
	return cats, nil
}

func (c *catalogService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	genres, err := c.client.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres error: %w", err)
	}
	return genres, nil
}

func (c *catalogService) UploadFile(ctx context.Context, kind models.UploadKind, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	up, err := c.client.Upload(ctx, kind, filepath.Base(path), f)
	if err != nil {
		return "", fmt.Errorf("upload error: %w", err)
	}
	if up.URL == "" {
		return "", fmt.Errorf("upload error: empty url in response")
	}
	return up.URL, nil
}
