package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/common"
	"github.com/dmitrijs2005/mimamsa/internal/logging"
)

var _ Client = (*HTTPClient)(nil)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newBackend starts a stub backend mounted under /api and returns a client for it.
func newBackend(t *testing.T, register func(r *mux.Router)) *HTTPClient {
	t.Helper()
	root := mux.NewRouter()
	register(root.PathPrefix("/api").Subrouter())

	ts := httptest.NewServer(root)
	t.Cleanup(ts.Close)

	c, err := NewHTTPClient(ts.URL+"/api", 5*time.Second, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.org", time.Second, discardLogger())
	require.Error(t, err)

	_, err = NewHTTPClient("://bad", time.Second, discardLogger())
	require.Error(t, err)
}

func TestLogin_SendsCredentialsAndDecodesUser(t *testing.T) {
	var got map[string]string
	var reqID string

	c := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/app/login/", func(w http.ResponseWriter, req *http.Request) {
			reqID = req.Header.Get(common.RequestIDHeaderName)
			_ = json.NewDecoder(req.Body).Decode(&got)
			writeJSON(w, http.StatusOK, map[string]any{
				"id": 1, "email": "a@b.com", "username": "a", "is_admin": false,
			})
		}).Methods(http.MethodPost)
	})

	s, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, &models.Session{ID: 1, Email: "a@b.com", Username: "a"}, s)
	assert.Equal(t, map[string]string{"email": "a@b.com", "password": "pw"}, got)
	assert.NotEmpty(t, reqID)
}

func TestLogin_ServerErrorMessageIsExtracted(t *testing.T) {
	c := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/app/login/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}).Methods(http.MethodPost)
	})

	_, err := c.Login(context.Background(), "a@b.com", "bad")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.ErrorIs(t, err, ErrUnauthorized)

	msg, ok := ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Invalid credentials", msg)
}

func TestRegister_FieldErrorsAreFlattened(t *testing.T) {
	c := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/app/register/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string][]string{
				"username": {"already taken"},
				"email":    {"invalid", "too short"},
			})
		}).Methods(http.MethodPost)
	})

	_, err := c.Register(context.Background(), "x", "y", "z")
	msg, ok := ServerMessage(err)
	require.True(t, ok)
	assert.Equal(t, "email: invalid, too short; username: already taken", msg)
}

func TestForgotPasswordEndpoints(t *testing.T) {
	bodies := map[string]map[string]string{}

	c := newBackend(t, func(r *mux.Router) {
		h := func(name string) http.HandlerFunc {
			return func(w http.ResponseWriter, req *http.Request) {
				var m map[string]string
				_ = json.NewDecoder(req.Body).Decode(&m)
				bodies[name] = m
				writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
			}
		}
		r.HandleFunc("/app/forgot-password/send-otp/", h("send")).Methods(http.MethodPost)
		r.HandleFunc("/app/forgot-password/verify-otp/", h("verify")).Methods(http.MethodPost)
		r.HandleFunc("/app/forgot-password/reset/", h("reset")).Methods(http.MethodPost)
	})

	ctx := context.Background()
	require.NoError(t, c.SendOTP(ctx, "a@b.com"))
	require.NoError(t, c.VerifyOTP(ctx, "a@b.com", "123456"))
	require.NoError(t, c.ResetPassword(ctx, "a@b.com", "123456", "secret1"))

	assert.Equal(t, map[string]string{"email": "a@b.com"}, bodies["send"])
	assert.Equal(t, map[string]string{"email": "a@b.com", "otp": "123456"}, bodies["verify"])
	assert.Equal(t, map[string]string{"email": "a@b.com", "otp": "123456", "new_password": "secret1"}, bodies["reset"])
}

func TestUpdateProfile_PutsToUserPath(t *testing.T) {
	c := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/app/profile/{id}/", func(w http.ResponseWriter, req *http.Request) {
			var in models.ProfileInput
			_ = json.NewDecoder(req.Body).Decode(&in)
			writeJSON(w, http.StatusOK, map[string]any{
				"id": 7, "email": in.Email, "username": in.Username, "is_admin": true,
				"profile_photo": in.ProfilePhoto, "path_id": mux.Vars(req)["id"],
			})
		}).Methods(http.MethodPut)
	})

	s, err := c.UpdateProfile(context.Background(), 7, models.ProfileInput{Username: "new", Email: "n@b.com", ProfilePhoto: "https://img"})
	require.NoError(t, err)
	assert.Equal(t, &models.Session{ID: 7, Email: "n@b.com", Username: "new", IsAdmin: true, ProfilePhoto: "https://img"}, s)
}

func TestListBooks_ShowAllQuery(t *testing.T) {
	var query string
	c := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/books/", func(w http.ResponseWriter, req *http.Request) {
			query = req.URL.RawQuery
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 3, "title": "Gitanjali", "author": 2, "is_active": true}})
		}).Methods(http.MethodGet)
	})

	books, err := c.ListBooks(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "show_all=true", query)
	assert.Equal(t, "Gitanjali", books[0].Title)
	require.NotNil(t, books[0].Author)
	assert.Equal(t, int64(2), *books[0].Author)

	_, err = c.ListBooks(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "", query)
}

func TestDeleteBook_SendsUserIDInBody(t *testing.T) {
	var body map[string]int64
	c := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/books/{id}/", func(w http.ResponseWriter, req *http.Request) {
			_ = json.NewDecoder(req.Body).Decode(&body)
			w.WriteHeader(http.StatusNoContent)
		}).Methods(http.MethodDelete)
	})

	require.NoError(t, c.DeleteBook(context.Background(), 9, 1))
	assert.Equal(t, map[string]int64{"user_id": 1}, body)
}

func TestReviews_Paths(t *testing.T) {
	var calls []string
	c := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/poems/{id}/reviews/", func(w http.ResponseWriter, req *http.Request) {
			calls = append(calls, req.Method+" "+mux.Vars(req)["id"])
			if req.Method == http.MethodGet {
				writeJSON(w, http.StatusOK, []models.Review{{ID: 1, User: 2, Rating: 5}})
				return
			}
			writeJSON(w, http.StatusCreated, map[string]string{})
		}).Methods(http.MethodGet, http.MethodPost)
		r.HandleFunc("/poems/{id}/reviews/user/", func(w http.ResponseWriter, req *http.Request) {
			calls = append(calls, "DELETE "+mux.Vars(req)["id"])
			w.WriteHeader(http.StatusNoContent)
		}).Methods(http.MethodDelete)
	})

	ctx := context.Background()
	reviews, err := c.ListReviews(ctx, 4)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.NoError(t, c.SubmitReview(ctx, 4, models.ReviewInput{UserID: 2, Rating: 5}))
	require.NoError(t, c.DeleteMyReview(ctx, 4, 2))

	assert.Equal(t, []string{"GET 4", "POST 4", "DELETE 4"}, calls)
}

func TestUpload_Multipart(t *testing.T) {
	var gotName, gotBody string
	c := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/upload/pdf/", func(w http.ResponseWriter, req *http.Request) {
			f, hdr, err := req.FormFile("file")
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			defer f.Close()
			b, _ := io.ReadAll(f)
			gotName, gotBody = hdr.Filename, string(b)
			writeJSON(w, http.StatusOK, models.Upload{URL: "https://cdn/book.pdf"})
		}).Methods(http.MethodPost)
	})

	up, err := c.Upload(context.Background(), models.UploadPDF, "book.pdf", strings.NewReader("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/book.pdf", up.URL)
	assert.Equal(t, "book.pdf", gotName)
	assert.Equal(t, "%PDF-1.7", gotBody)

	_, err = c.Upload(context.Background(), models.UploadKind("video"), "x.mp4", strings.NewReader(""))
	require.Error(t, err)
}

func TestUnavailable_WhenServerIsDown(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c, err := NewHTTPClient(url+"/api", time.Second, discardLogger())
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "a@b.com", "pw")
	require.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestTimeout_IsEnforced(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		ts.Close()
	})

	c, err := NewHTTPClient(ts.URL, 50*time.Millisecond, discardLogger())
	require.NoError(t, err)

	err = c.SendOTP(context.Background(), "a@b.com")
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, err, ErrTimeout)
	assert.NotContains(t, err.Error(), ts.URL)
}

func TestRefusedConnection_DropsURL(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	c, err := NewHTTPClient(base, time.Second, discardLogger())
	require.NoError(t, err)

	err = c.SendOTP(context.Background(), "a@b.com")
	require.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.NotContains(t, err.Error(), base)
	assert.True(t, strings.HasPrefix(err.Error(), ErrUnavailable.Error()+": "), err.Error())
}

func TestCanceledContext_IsReturnedAsIs(t *testing.T) {
	c := newBackend(t, func(r *mux.Router) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.SendOTP(ctx, "a@b.com")
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestPing_AnyStatusIsReachable(t *testing.T) {
	c := newBackend(t, func(r *mux.Router) {})
	require.NoError(t, c.Ping(context.Background()))
}

func TestDecodeError(t *testing.T) {
	c := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/authors/", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})
	})

	_, err := c.ListAuthors(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode GET authors/")
}

func TestMessageFromBody(t *testing.T) {
	assert.Equal(t, "boom", messageFromBody([]byte(`{"error":"boom"}`)))
	assert.Equal(t, "nope", messageFromBody([]byte(`{"detail":"nope"}`)))
	assert.Equal(t, "", messageFromBody([]byte(`<html>502</html>`)))
	assert.Equal(t, "", messageFromBody([]byte(`{}`)))
}

func TestDo_LogsRequestID(t *testing.T) {
	var sent string
	root := mux.NewRouter()
	root.HandleFunc("/api/genres/", func(w http.ResponseWriter, req *http.Request) {
		sent = req.Header.Get(common.RequestIDHeaderName)
		writeJSON(w, http.StatusOK, []models.Genre{})
	})
	ts := httptest.NewServer(root)
	t.Cleanup(ts.Close)

	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	c, err := NewHTTPClient(ts.URL+"/api", time.Second, log)
	require.NoError(t, err)

	_, err = c.ListGenres(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, sent)
	out := buf.String()
	assert.Contains(t, out, "request_id="+sent)
	assert.Contains(t, out, "path=genres/")
	assert.Contains(t, out, "status=200")
}
