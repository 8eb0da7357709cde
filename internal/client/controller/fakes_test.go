package controller

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/client/services"
	"github.com/dmitrijs2005/mimamsa/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeAuth implements services.AuthService. gate, when set, blocks Login
// until it is closed.
type fakeAuth struct {
	mu sync.Mutex

	LoginRet    *models.Session
	LoginErr    error
	RegisterRet *models.Session
	RegisterErr error
	SendOTPErr  error
	VerifyErr   error
	ResetErr    error
	ProfileRet  *models.Session
	ProfileErr  error

	gate    chan struct{}
	entered chan struct{}

	Calls []string
	Args  [][]string
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) record(name string, args ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
	f.Args = append(f.Args, args)
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.record("Login", email, password)
	if f.entered != nil {
		close(f.entered)
	}
	if f.gate != nil {
		<-f.gate
	}
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuth) Register(ctx context.Context, email, username, password string) (*models.Session, error) {
	f.record("Register", email, username, password)
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAuth) SendOTP(ctx context.Context, email string) error {
	f.record("SendOTP", email)
	return f.SendOTPErr
}

func (f *fakeAuth) VerifyOTP(ctx context.Context, email, otp string) error {
	f.record("VerifyOTP", email, otp)
	return f.VerifyErr
}

func (f *fakeAuth) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	f.record("ResetPassword", email, otp, newPassword)
	return f.ResetErr
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, userID int64, in models.ProfileInput) (*models.Session, error) {
	f.record("UpdateProfile", in.Username, in.Email)
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeAuth) Ping(ctx context.Context) error  { return nil }
func (f *fakeAuth) Close(ctx context.Context) error { return nil }

// memStore is an in-memory SessionStore.
type memStore struct {
	mu       sync.Mutex
	s        *models.Session
	SaveErr  error
	ClearErr error
	Saves    int
	Clears   int
}

func (m *memStore) Load(ctx context.Context) (*models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s == nil {
		return nil, false
	}
	return m.s.Clone(), true
}

func (m *memStore) Save(ctx context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.s = s.Clone()
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Clears++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.s = nil
	return nil
}
