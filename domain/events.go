package domain

import (
	"context"
	"time"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Authentication events
	LoginSuccessEvent     AuditEventType = "LOGIN_SUCCESS"
	LoginFailureEvent     AuditEventType = "LOGIN_FAILED"
	LoginCachedReuseEvent AuditEventType = "LOGIN_CACHED_REUSE"
	LogoutEvent           AuditEventType = "LOGOUT"

	// Challenge events
	ChallengeIssuedEvent    AuditEventType = "CHALLENGE_ISSUED"
	ChallengeRetryEvent     AuditEventType = "CHALLENGE_RETRY"
	ChallengeAcceptedEvent  AuditEventType = "CHALLENGE_ACCEPTED"
	ChallengeExhaustedEvent AuditEventType = "CHALLENGE_EXHAUSTED"
	MFARequiredEvent        AuditEventType = "MFA_REQUIRED"

	// Export events
	ExportEvent AuditEventType = "EXPORT"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType   AuditEventType `json:"event_type"`
	Username    string         `json:"username,omitempty"`
	ChallengeID string         `json:"challenge_id,omitempty"`
	Operation   string         `json:"operation,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
	ErrorMsg    string         `json:"error_msg,omitempty"`
	Success     bool           `json:"success"`
}

// AuditLogger defines operations for audit logging
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent) error
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError sets error information on the audit event
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithUsername sets the username field
func (e *AuditEvent) WithUsername(username string) *AuditEvent {
	e.Username = username
	return e
}

// WithChallengeID sets the challenge id field
func (e *AuditEvent) WithChallengeID(id string) *AuditEvent {
	e.ChallengeID = id
	return e
}

// WithOperation sets the operation field
func (e *AuditEvent) WithOperation(op string) *AuditEvent {
	e.Operation = op
	return e
}
