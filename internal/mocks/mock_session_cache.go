package mocks

import (
	"context"

	"github.com/willcheung/robinhood-export-function/domain"
)

// MockSessionCache implements domain.SessionCache interface for testing
type MockSessionCache struct {
	GetFunc    func(ctx context.Context, username string) (*domain.SessionRecord, error)
	PutFunc    func(ctx context.Context, record *domain.SessionRecord) error
	DeleteFunc func(ctx context.Context, username string) error

	GetCalls    int
	PutCalls    int
	DeleteCalls int
}

// NewMockSessionCache creates a new MockSessionCache with default behaviors
func NewMockSessionCache() *MockSessionCache {
	return &MockSessionCache{}
}

// Get retrieves a session record by username
func (m *MockSessionCache) Get(ctx context.Context, username string) (*domain.SessionRecord, error) {
	m.GetCalls++
	if m.GetFunc != nil {
		return m.GetFunc(ctx, username)
	}
	// Default behavior: not found
	return nil, domain.ErrSessionNotFound
}

// Put stores a session record
func (m *MockSessionCache) Put(ctx context.Context, record *domain.SessionRecord) error {
	m.PutCalls++
	if m.PutFunc != nil {
		return m.PutFunc(ctx, record)
	}
	// Default behavior: success
	return nil
}

// Delete removes a session record by username
func (m *MockSessionCache) Delete(ctx context.Context, username string) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, username)
	}
	// Default behavior: success
	return nil
}
