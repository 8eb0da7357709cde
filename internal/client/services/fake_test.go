package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/mimamsa/internal/client/client"
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
)

// fakeClient implements client.Client for service unit tests. Each method
// records its arguments and returns the configured result.
type fakeClient struct {
	LoginRet    *models.Session
	LoginErr    error
	RegisterRet *models.Session
	RegisterErr error
	SendOTPErr  error
	VerifyErr   error
	ResetErr    error
	ProfileRet  *models.Session
	ProfileErr  error
	PingErr     error
	CloseErr    error

	Books         []models.Book
	BooksErr      error
	Authors       []models.Author
	Categories    []models.Category
	Genres        []models.Genre
	MutationErr   error
	UploadRet     *models.Upload
	UploadErr     error
	Poems         []models.Poem
	PoemCats      []models.PoemCategory
	Reviews       []models.Review
	LastShowAll   bool
	LastUpload    string
	LastUploadRaw []byte
	LastBody      any
	Calls         []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string, body any) {
	f.Calls = append(f.Calls, name)
	if body != nil {
		f.LastBody = body
	}
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.record("Login", map[string]string{"email": email, "password": password})
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, email, username, password string) (*models.Session, error) {
	f.record("Register", map[string]string{"email": email, "username": username})
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) SendOTP(ctx context.Context, email string) error {
	f.record("SendOTP", email)
	return f.SendOTPErr
}

func (f *fakeClient) VerifyOTP(ctx context.Context, email, otp string) error {
	f.record("VerifyOTP", [2]string{email, otp})
	return f.VerifyErr
}

func (f *fakeClient) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	f.record("ResetPassword", [3]string{email, otp, newPassword})
	return f.ResetErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, userID int64, in models.ProfileInput) (*models.Session, error) {
	f.record("UpdateProfile", in)
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) ListBooks(ctx context.Context, showAll bool) ([]models.Book, error) {
	f.record("ListBooks", nil)
	f.LastShowAll = showAll
	return f.Books, f.BooksErr
}

func (f *fakeClient) CreateBook(ctx context.Context, in models.BookInput) error {
	f.record("CreateBook", in)
	return f.MutationErr
}

func (f *fakeClient) UpdateBook(ctx context.Context, bookID int64, in models.BookInput) error {
	f.record("UpdateBook", in)
	return f.MutationErr
}

func (f *fakeClient) SetBookActive(ctx context.Context, bookID, userID int64, active bool) error {
	f.record("SetBookActive", active)
	return f.MutationErr
}

func (f *fakeClient) DeleteBook(ctx context.Context, bookID, userID int64) error {
	f.record("DeleteBook", bookID)
	return f.MutationErr
}

func (f *fakeClient) ListAuthors(ctx context.Context) ([]models.Author, error) {
	f.record("ListAuthors", nil)
	return f.Authors, f.MutationErr
}

func (f *fakeClient) CreateAuthor(ctx context.Context, in models.AuthorInput) error {
	f.record("CreateAuthor", in)
	return f.MutationErr
}

func (f *fakeClient) UpdateAuthor(ctx context.Context, authorID int64, in models.AuthorInput) error {
	f.record("UpdateAuthor", in)
	return f.MutationErr
}

func (f *fakeClient) DeleteAuthor(ctx context.Context, authorID, userID int64) error {
	f.record("DeleteAuthor", authorID)
	return f.MutationErr
}

func (f *fakeClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.record("ListCategories", nil)
	return f.Categories, f.MutationErr
}

func (f *fakeClient) ListGenres(ctx context.Context) ([]models.Genre, error) {
	f.record("ListGenres", nil)
	return f.Genres, f.MutationErr
}

func (f *fakeClient) Upload(ctx context.Context, kind models.UploadKind, filename string, r io.Reader) (*models.Upload, error) {
	f.record("Upload", kind)
	f.LastUpload = filename
	f.LastUploadRaw, _ = io.ReadAll(r)
	return f.UploadRet, f.UploadErr
}

func (f *fakeClient) ListPoems(ctx context.Context) ([]models.Poem, error) {
	f.record("ListPoems", nil)
	return f.Poems, f.MutationErr
}

func (f *fakeClient) CreatePoem(ctx context.Context, in models.PoemInput) error {
	f.record("CreatePoem", in)
	return f.MutationErr
}

func (f *fakeClient) UpdatePoem(ctx context.Context, poemID int64, in models.PoemInput) error {
	f.record("UpdatePoem", in)
	return f.MutationErr
}

func (f *fakeClient) DeletePoem(ctx context.Context, poemID, userID int64) error {
	f.record("DeletePoem", poemID)
	return f.MutationErr
}

func (f *fakeClient) ListPoemCategories(ctx context.Context) ([]models.PoemCategory, error) {
	f.record("ListPoemCategories", nil)
	return f.PoemCats, f.MutationErr
}

func (f *fakeClient) CreatePoemCategory(ctx context.Context, in models.PoemCategoryInput) error {
	f.record("CreatePoemCategory", in)
	return f.MutationErr
}

func (f *fakeClient) ListReviews(ctx context.Context, poemID int64) ([]models.Review, error) {
	f.record("ListReviews", nil)
	return f.Reviews, f.MutationErr
}

func (f *fakeClient) SubmitReview(ctx context.Context, poemID int64, in models.ReviewInput) error {
	f.record("SubmitReview", in)
	return f.MutationErr
}

func (f *fakeClient) DeleteMyReview(ctx context.Context, poemID, userID int64) error {
	f.record("DeleteMyReview", userID)
	return f.MutationErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Close() error { return f.CloseErr }
