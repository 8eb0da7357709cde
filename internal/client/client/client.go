package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/mimamsa/internal/client/models"
)

// AuthAPI covers the account lifecycle endpoints.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, email, username, password string) (*models.Session, error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	UpdateProfile(ctx context.Context, userID int64, in models.ProfileInput) (*models.Session, error)
}

// CatalogAPI covers books, authors, categories, genres and uploads.
type CatalogAPI interface {
	ListBooks(ctx context.Context, showAll bool) ([]models.Book, error)
	CreateBook(ctx context.Context, in models.BookInput) error
	UpdateBook(ctx context.Context, bookID int64, in models.BookInput) error
	SetBookActive(ctx context.Context, bookID, userID int64, active bool) error
	DeleteBook(ctx context.Context, bookID, userID int64) error

	ListAuthors(ctx context.Context) ([]models.Author, error)
	CreateAuthor(ctx context.Context, in models.AuthorInput) error
	UpdateAuthor(ctx context.Context, authorID int64, in models.AuthorInput) error
	DeleteAuthor(ctx context.Context, authorID, userID int64) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)

	Upload(ctx context.Context, kind models.UploadKind, filename string, r io.Reader) (*models.Upload, error)
}

// PoemAPI covers poems, poem categories and reviews.
type PoemAPI interface {
	ListPoems(ctx context.Context) ([]models.Poem, error)
	CreatePoem(ctx context.Context, in models.PoemInput) error
	UpdatePoem(ctx context.Context, poemID int64, in models.PoemInput) error
	DeletePoem(ctx context.Context, poemID, userID int64) error

	ListPoemCategories(ctx context.Context) ([]models.PoemCategory, error)
	CreatePoemCategory(ctx context.Context, in models.PoemCategoryInput) error

	ListReviews(ctx context.Context, poemID int64) ([]models.Review, error)
	SubmitReview(ctx context.Context, poemID int64, in models.ReviewInput) error
	DeleteMyReview(ctx context.Context, poemID, userID int64) error
}

// Client is the full backend contract.
type Client interface {
	AuthAPI
	CatalogAPI
	PoemAPI

	Ping(ctx context.Context) error
	Close() error
}
