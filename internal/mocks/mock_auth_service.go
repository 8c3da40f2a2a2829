package mocks

import (
	"context"

	"github.com/willcheung/robinhood-export-function/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginFunc            func(ctx context.Context, creds domain.Credentials, opts domain.LoginOptions) (*domain.LoginResult, error)
	ResolveChallengeFunc func(ctx context.Context, challengeID, code string) (*domain.ChallengeResult, error)
	LogoutFunc           func(ctx context.Context) error
	IsLoggedInFunc       func() bool
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login performs a login attempt
func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials, opts domain.LoginOptions) (*domain.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds, opts)
	}
	// Default behavior: authenticated
	return &domain.LoginResult{State: domain.LoginAuthenticated}, nil
}

// ResolveChallenge resolves a pending challenge
func (m *MockAuthService) ResolveChallenge(ctx context.Context, challengeID, code string) (*domain.ChallengeResult, error) {
	if m.ResolveChallengeFunc != nil {
		return m.ResolveChallengeFunc(ctx, challengeID, code)
	}
	// Default behavior: accepted
	return &domain.ChallengeResult{State: domain.ChallengeAccepted}, nil
}

// Logout clears the session
func (m *MockAuthService) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	// Default behavior: success
	return nil
}

// IsLoggedIn reports the login state
func (m *MockAuthService) IsLoggedIn() bool {
	if m.IsLoggedInFunc != nil {
		return m.IsLoggedInFunc()
	}
	// Default behavior: logged in
	return true
}
