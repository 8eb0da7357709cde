package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/mimamsa/internal/client/controller"
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/client/services"
	"github.com/dmitrijs2005/mimamsa/internal/common"
	"github.com/dmitrijs2005/mimamsa/internal/logging"
)

type fakeAuth struct {
	LoginRet    *models.Session
	LoginErr    error
	RegisterRet *models.Session
	RegisterErr error
	SendOTPErr  error
	VerifyErr   error
	ResetErr    error
	ProfileRet  *models.Session
	ProfileErr  error

	Calls []string
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.Calls = append(f.Calls, "Login")
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuth) Register(ctx context.Context, email, username, password string) (*models.Session, error) {
	f.Calls = append(f.Calls, "Register")
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAuth) SendOTP(ctx context.Context, email string) error {
	f.Calls = append(f.Calls, "SendOTP")
	return f.SendOTPErr
}

func (f *fakeAuth) VerifyOTP(ctx context.Context, email, otp string) error {
	f.Calls = append(f.Calls, "VerifyOTP")
	return f.VerifyErr
}

func (f *fakeAuth) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	f.Calls = append(f.Calls, "ResetPassword")
	return f.ResetErr
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, userID int64, in models.ProfileInput) (*models.Session, error) {
	f.Calls = append(f.Calls, "UpdateProfile")
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeAuth) Ping(ctx context.Context) error  { return nil }
func (f *fakeAuth) Close(ctx context.Context) error { return nil }

type memStore struct {
	s *models.Session
}

func (m *memStore) Load(context.Context) (*models.Session, bool) {
	return m.s.Clone(), m.s != nil
}

func (m *memStore) Save(_ context.Context, s *models.Session) error {
	m.s = s.Clone()
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.s = nil
	return nil
}

type fakeCatalog struct {
	Books   []models.Book
	Authors []models.Author
	Err     error

	SavedAuthor   *models.AuthorInput
	SavedAuthorID int64
	Deleted       []int64
	Uploads       []string
	LastFilter    services.BookFilter
}

var _ services.CatalogService = (*fakeCatalog)(nil)

func (f *fakeCatalog) ListBooks(_ context.Context, _ bool, flt services.BookFilter) ([]models.Book, error) {
	f.LastFilter = flt
	return services.FilterBooks(f.Books, flt), f.Err
}

func (f *fakeCatalog) GetBook(_ context.Context, _ bool, id int64) (*models.Book, error) {
	for i := range f.Books {
		if f.Books[i].ID == id {
			return &f.Books[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeCatalog) SaveBook(context.Context, int64, models.BookInput) error { return f.Err }

func (f *fakeCatalog) SetBookActive(context.Context, int64, int64, bool) error { return f.Err }

func (f *fakeCatalog) DeleteBook(_ context.Context, id, _ int64) error {
	f.Deleted = append(f.Deleted, id)
	return f.Err
}

func (f *fakeCatalog) ListAuthors(context.Context) ([]models.Author, error) { return f.Authors, f.Err }

func (f *fakeCatalog) SaveAuthor(_ context.Context, id int64, in models.AuthorInput) error {
	f.SavedAuthorID, f.SavedAuthor = id, &in
	return f.Err
}

func (f *fakeCatalog) DeleteAuthor(_ context.Context, id, _ int64) error {
	f.Deleted = append(f.Deleted, id)
	return f.Err
}

func (f *fakeCatalog) ListCategories(context.Context) ([]models.Category, error) { return nil, f.Err }

func (f *fakeCatalog) ListGenres(context.Context) ([]models.Genre, error) { return nil, f.Err }

func (f *fakeCatalog) UploadFile(_ context.Context, kind models.UploadKind, path string) (string, error) {
	f.Uploads = append(f.Uploads, string(kind)+":"+path)
	return "https://cdn.example/" + path, f.Err
}

type fakePoems struct {
	Poems   []models.Poem
	Cats    []models.PoemCategory
	Reviews []models.Review
	Err     error

	SavedPoem   *models.PoemInput
	SavedReview *models.ReviewInput
	Deleted     []int64
}

var _ services.PoemService = (*fakePoems)(nil)

func (f *fakePoems) ListPoems(context.Context) ([]models.Poem, error) { return f.Poems, f.Err }

func (f *fakePoems) SavePoem(_ context.Context, _ int64, in models.PoemInput) error {
	f.SavedPoem = &in
	return f.Err
}

func (f *fakePoems) DeletePoem(_ context.Context, id, _ int64) error {
	f.Deleted = append(f.Deleted, id)
	return f.Err
}

func (f *fakePoems) ListPoemCategories(context.Context) ([]models.PoemCategory, error) {
	return f.Cats, f.Err
}

func (f *fakePoems) AddPoemCategory(context.Context, models.PoemCategoryInput) error { return f.Err }

func (f *fakePoems) ListReviews(context.Context, int64) ([]models.Review, error) {
	return f.Reviews, f.Err
}

func (f *fakePoems) SubmitReview(_ context.Context, _ int64, in models.ReviewInput) error {
	f.SavedReview = &in
	return f.Err
}

func (f *fakePoems) DeleteMyReview(context.Context, int64, int64) error { return f.Err }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type testApp struct {
	*App
	auth    *fakeAuth
	store   *memStore
	catalog *fakeCatalog
	poems   *fakePoems
	out     *bytes.Buffer
}

// newTestApp builds an App over fakes. A non-nil session starts it signed in.
func newTestApp(t *testing.T, s *models.Session) *testApp {
	t.Helper()
	ta := &testApp{
		auth:    &fakeAuth{},
		store:   &memStore{s: s},
		catalog: &fakeCatalog{},
		poems:   &fakePoems{},
		out:     &bytes.Buffer{},
	}
	log := discardLogger()
	ctl := controller.New(ta.auth, ta.store, log)
	ta.App = NewApp(ctl, ta.auth, ta.catalog, ta.poems, log)
	ta.App.out = ta.out
	ta.App.reader = bufio.NewReader(strings.NewReader(""))
	if err := ctl.Boot(context.Background()); err != nil {
		t.Fatalf("boot: %v", err)
	}
	return ta
}

// answer stubs the prompts with the given lines, in order. Passwords are
// read from the same queue.
func answer(t *testing.T, lines ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	next := func() string {
		if len(lines) == 0 {
			t.Fatalf("unexpected prompt")
		}
		l := lines[0]
		lines = lines[1:]
		return l
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getPassword = func(_ string, _ io.Writer) ([]byte, error) { return []byte(next()), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

var (
	member = &models.Session{ID: 1, Email: "a@b.com", Username: "a"}
	admin  = &models.Session{ID: 2, Email: "root@b.com", Username: "root", IsAdmin: true}
)
