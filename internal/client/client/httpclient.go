package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/common"
	"github.com/dmitrijs2005/mimamsa/internal/logging"
	"github.com/dmitrijs2005/mimamsa/internal/netx"
)

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient returns a Client talking JSON to the backend rooted at
// baseURL (for example https://host/api). A zero timeout means no limit.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}, nil
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

func (c *HTTPClient) jsonRequest(method, path string, in any) (request, error) {
	r := request{method: method, path: path}
	if in == nil {
		return r, nil
	}
	b, err := json.Marshal(in)
	if err != nil {
		return r, fmt.Errorf("encode %s %s: %w", method, path, err)
	}
	r.body = bytes.NewReader(b)
	r.contentType = "application/json"
	return r, nil
}

// call sends a JSON request and decodes a JSON answer into out (when non-nil).
func (c *HTTPClient) call(ctx context.Context, method, path string, in, out any) error {
	r, err := c.jsonRequest(method, path, in)
	if err != nil {
		return err
	}
	return c.do(ctx, r, out)
}

func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	u := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), r.body)
	if err != nil {
		return err
	}
	reqID := common.NewRequestID()
	ctx = logging.WithFields(ctx, "method", r.method, "path", r.path, "request_id", reqID)
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.log.Warn(ctx, "request failed", "error", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Message: messageFromBody(body), Body: body}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

// transportError wraps a failed round trip in ErrUnavailable. Timeouts
// also match ErrTimeout; other causes drop the *url.Error envelope so the
// request URL stays out of user-facing text.
func transportError(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %w", ErrUnavailable, ErrTimeout)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		err = ue.Err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func itemPath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10) + "/"
}

type userRef struct {
	UserID int64 `json:"user_id"`
}

// Ping reports whether the backend answers at all. Any HTTP status counts
// as reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	err := c.do(ctx, request{method: http.MethodGet, path: "/"}, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return nil
	}
	return err
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// auth

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var s models.Session
	in := map[string]string{"email": email, "password": password}
	if err := c.call(ctx, http.MethodPost, "app/login/", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, username, password string) (*models.Session, error) {
	var s models.Session
	in := map[string]string{"email": email, "username": username, "password": password}
	if err := c.call(ctx, http.MethodPost, "app/register/", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) SendOTP(ctx context.Context, email string) error {
	return c.call(ctx, http.MethodPost, "app/forgot-password/send-otp/", map[string]string{"email": email}, nil)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, otp string) error {
	in := map[string]string{"email": email, "otp": otp}
	return c.call(ctx, http.MethodPost, "app/forgot-password/verify-otp/", in, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	in := map[string]string{"email": email, "otp": otp, "new_password": newPassword}
	return c.call(ctx, http.MethodPost, "app/forgot-password/reset/", in, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, userID int64, in models.ProfileInput) (*models.Session, error) {
	var s models.Session
	if err := c.call(ctx, http.MethodPut, itemPath("app/profile", userID), in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// catalog

func (c *HTTPClient) ListBooks(ctx context.Context, showAll bool) ([]models.Book, error) {
	r := request{method: http.MethodGet, path: "books/"}
	if showAll {
		r.query = url.Values{"show_all": []string{"true"}}
	}
	var books []models.Book
	if err := c.do(ctx, r, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *HTTPClient) CreateBook(ctx context.Context, in models.BookInput) error {
	return c.call(ctx, http.MethodPost, "books/", in, nil)
}

func (c *HTTPClient) UpdateBook(ctx context.Context, bookID int64, in models.BookInput) error {
	return c.call(ctx, http.MethodPut, itemPath("books", bookID), in, nil)
}

func (c *HTTPClient) SetBookActive(ctx context.Context, bookID, userID int64, active bool) error {
	in := struct {
		UserID   int64 `json:"user_id"`
		IsActive bool  `json:"is_active"`
	}{userID, active}
	return c.call(ctx, http.MethodPut, itemPath("books", bookID), in, nil)
}

func (c *HTTPClient) DeleteBook(ctx context.Context, bookID, userID int64) error {
	return c.call(ctx, http.MethodDelete, itemPath("books", bookID), userRef{userID}, nil)
}

func (c *HTTPClient) ListAuthors(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	if err := c.call(ctx, http.MethodGet, "authors/", nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (c *HTTPClient) CreateAuthor(ctx context.Context, in models.AuthorInput) error {
	return c.call(ctx, http.MethodPost, "authors/", in, nil)
}

func (c *HTTPClient) UpdateAuthor(ctx context.Context, authorID int64, in models.AuthorInput) error {
	return c.call(ctx, http.MethodPut, itemPath("authors", authorID), in, nil)
}

func (c *HTTPClient) DeleteAuthor(ctx context.Context, authorID, userID int64) error {
	return c.call(ctx, http.MethodDelete, itemPath("authors", authorID), userRef{userID}, nil)
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := c.call(ctx, http.MethodGet, "categories/", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *HTTPClient) ListGenres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := c.call(ctx, http.MethodGet, "genres/", nil, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func (c *HTTPClient) Upload(ctx context.Context, kind models.UploadKind, filename string, r io.Reader) (*models.Upload, error) {
	switch kind {
	case models.UploadImage, models.UploadPDF, models.UploadText:
	default:
		return nil, fmt.Errorf("unknown upload kind %q", kind)
	}

	body, ct, err := netx.MultipartFile("file", filename, r)
	if err != nil {
		return nil, err
	}

	var up models.Upload
	req := request{method: http.MethodPost, path: "upload/" + string(kind) + "/", body: body, contentType: ct}
	if err := c.do(ctx, req, &up); err != nil {
		return nil, err
	}
	return &up, nil
}

// poems

func (c *HTTPClient) ListPoems(ctx context.Context) ([]models.Poem, error) {
	var poems []models.Poem
	if err := c.call(ctx, http.MethodGet, "poems/", nil, &poems); err != nil {
		return nil, err
	}
	return poems, nil
}

func (c *HTTPClient) CreatePoem(ctx context.Context, in models.PoemInput) error {
	return c.call(ctx, http.MethodPost, "poems/", in, nil)
}

func (c *HTTPClient) UpdatePoem(ctx context.Context, poemID int64, in models.PoemInput) error {
	return c.call(ctx, http.MethodPut, itemPath("poems", poemID), in, nil)
}

func (c *HTTPClient) DeletePoem(ctx context.Context, poemID, userID int64) error {
	return c.call(ctx, http.MethodDelete, itemPath("poems", poemID), userRef{userID}, nil)
}

func (c *HTTPClient) ListPoemCategories(ctx context.Context) ([]models.PoemCategory, error) {
	var cats []models.PoemCategory
	if err := c.call(ctx, http.MethodGet, "poem-categories/", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *HTTPClient) CreatePoemCategory(ctx context.Context, in models.PoemCategoryInput) error {
	return c.call(ctx, http.MethodPost, "poem-categories/", in, nil)
}

func (c *HTTPClient) ListReviews(ctx context.Context, poemID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.call(ctx, http.MethodGet, itemPath("poems", poemID)+"reviews/", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *HTTPClient) SubmitReview(ctx context.Context, poemID int64, in models.ReviewInput) error {
	return c.call(ctx, http.MethodPost, itemPath("poems", poemID)+"reviews/", in, nil)
}

func (c *HTTPClient) DeleteMyReview(ctx context.Context, poemID, userID int64) error {
	return c.call(ctx, http.MethodDelete, itemPath("poems", poemID)+"reviews/user/", userRef{userID}, nil)
}
