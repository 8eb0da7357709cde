// Package services contains application services for the Mimamsa client.
// This file defines the authentication service: login, registration, the
// OTP password reset, profile updates and the liveness probe.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mimamsa/internal/client/client"
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
)

// AuthService defines account operations used by the controller.
//
// Contract:
//   - Login and UpdateProfile return a user record that passed Validate.
//   - Register returns the created user when the backend sends one back,
//     and (nil, nil) when it only acknowledges the registration.
//   - SendOTP, VerifyOTP and ResetPassword return nil on success.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, email, username, password string) (*models.Session, error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	UpdateProfile(ctx context.Context, userID int64, in models.ProfileInput) (*models.Session, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client.
type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	s, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return s, nil
}

func (a *authService) Register(ctx context.Context, email, username, password string) (*models.Session, error) {
	s, err := a.client.Register(ctx, email, username, password)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if s.Validate() != nil {
		return nil, nil
	}
	return s, nil
}

func (a *authService) SendOTP(ctx context.Context, email string) error {
	if err := a.client.SendOTP(ctx, email); err != nil {
		return fmt.Errorf("send otp error: %w", err)
	}
	return nil
}

func (a *authService) VerifyOTP(ctx context.Context, email, otp string) error {
	if err := a.client.VerifyOTP(ctx, email, otp); err != nil {
		return fmt.Errorf("verify otp error: %w", err)
	}
	return nil
}

func (a *authService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	if err := a.client.ResetPassword(ctx, email, otp, newPassword); err != nil {
		return fmt.Errorf("reset password error: %w", err)
	}
	return nil
}

// UpdateProfile saves the profile and returns the user record to store as
// the new session.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, in models.ProfileInput) (*models.Session, error) {
	s, err := a.client.UpdateProfile(ctx, userID, in)
	if err != nil {
		return nil, fmt.Errorf("update profile error: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("update profile error: %w", err)
	}
	return s, nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
