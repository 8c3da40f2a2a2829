package mocks

import (
	"context"
	"net/http"

	"github.com/willcheung/robinhood-export-function/domain"
)

// MockAuthTransport implements domain.AuthTransport interface for testing
type MockAuthTransport struct {
	PostLoginFunc             func(ctx context.Context, payload domain.LoginPayload) (*domain.LoginResponse, error)
	PostChallengeResponseFunc func(ctx context.Context, challengeID, code string) (*domain.ChallengeResponse, error)
	ProbeAuthenticatedFunc    func(ctx context.Context, header string) (int, error)

	PostLoginCalls             int
	PostChallengeResponseCalls int
	ProbeAuthenticatedCalls    int
	AcceptedChallenges         []string
}

// NewMockAuthTransport creates a new MockAuthTransport with default behaviors
func NewMockAuthTransport() *MockAuthTransport {
	return &MockAuthTransport{}
}

// PostLogin sends a token-exchange request
func (m *MockAuthTransport) PostLogin(ctx context.Context, payload domain.LoginPayload) (*domain.LoginResponse, error) {
	m.PostLoginCalls++
	if m.PostLoginFunc != nil {
		return m.PostLoginFunc(ctx, payload)
	}
	// Default behavior: successful token exchange
	return &domain.LoginResponse{
		AccessToken:  "mock-access-token",
		TokenType:    "Bearer",
		RefreshToken: "mock-refresh-token",
	}, nil
}

// PostChallengeResponse submits a challenge code
func (m *MockAuthTransport) PostChallengeResponse(ctx context.Context, challengeID, code string) (*domain.ChallengeResponse, error) {
	m.PostChallengeResponseCalls++
	if m.PostChallengeResponseFunc != nil {
		return m.PostChallengeResponseFunc(ctx, challengeID, code)
	}
	// Default behavior: accepted
	return &domain.ChallengeResponse{}, nil
}

// ProbeAuthenticated issues an authenticated probe request
func (m *MockAuthTransport) ProbeAuthenticated(ctx context.Context, header string) (int, error) {
	m.ProbeAuthenticatedCalls++
	if m.ProbeAuthenticatedFunc != nil {
		return m.ProbeAuthenticatedFunc(ctx, header)
	}
	// Default behavior: valid session
	return http.StatusOK, nil
}

// AcceptChallenge records the acceptance marker
func (m *MockAuthTransport) AcceptChallenge(challengeID string) {
	m.AcceptedChallenges = append(m.AcceptedChallenges, challengeID)
}
