package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/willcheung/robinhood-export-function/domain"
	"github.com/willcheung/robinhood-export-function/internal/infrastructure/auth"
)

// LoginConfig carries the payload constants of the token-exchange request.
type LoginConfig struct {
	ClientID  string
	Scope     string
	ExpiresIn int
}

// AuthServiceImpl implements domain.AuthService. It drives the login protocol
// state machine: cached-session reuse, fresh password login, and the
// challenge/MFA sub-protocol. Every invocation is a single synchronous
// exchange; continuity across stateless invocations lives in the session
// cache, never in this struct (the exhausted set only blocks repeat calls
// within one process).
type AuthServiceImpl struct {
	cache     domain.SessionCache
	transport domain.AuthTransport
	deviceGen domain.DeviceTokenGenerator
	authState *AuthorizationState
	audit     domain.AuditLogger
	config    LoginConfig

	mu        sync.Mutex
	exhausted map[string]struct{}
}

// NewAuthService creates a new auth service
func NewAuthService(
	cache domain.SessionCache,
	transport domain.AuthTransport,
	deviceGen domain.DeviceTokenGenerator,
	authState *AuthorizationState,
	audit domain.AuditLogger,
	config LoginConfig,
) domain.AuthService {
	return &AuthServiceImpl{
		cache:     cache,
		transport: transport,
		deviceGen: deviceGen,
		authState: authState,
		audit:     audit,
		config:    config,
		exhausted: make(map[string]struct{}),
	}
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, creds domain.Credentials, opts domain.LoginOptions) (*domain.LoginResult, error) {
	challengeType := "email"
	if opts.BySMS {
		challengeType = "sms"
	}

	payload := domain.LoginPayload{
		ClientID:      s.config.ClientID,
		ExpiresIn:     s.config.ExpiresIn,
		GrantType:     "password",
		Password:      creds.Password,
		Scope:         s.config.Scope,
		Username:      creds.Username,
		ChallengeType: challengeType,
		DeviceToken:   s.deviceGen.Generate(),
		MFACode:       opts.MFACode,
	}

	record, err := s.cache.Get(ctx, creds.Username)
	switch {
	case err == nil:
		// Reuse the stored device token so the brokerage correlates this
		// attempt with the previously challenged device. This also covers
		// challenge placeholders written by an earlier invocation.
		if record.DeviceToken != "" {
			payload.DeviceToken = record.DeviceToken
		}
		if opts.StoreSession && record.HasToken() {
			if result := s.tryCachedSession(ctx, record); result != nil {
				return result, nil
			}
			log.Printf("cached session for %s rejected, falling back to fresh login", creds.Username)
			s.authState.Clear()
		}
	case errors.Is(err, domain.ErrSessionNotFound):
		// No cached state, fresh login.
	default:
		// Login without reuse is still correct, so a broken cache degrades
		// to a miss rather than failing the call.
		log.Printf("session cache read failed, treating as miss: %v", err)
	}

	return s.freshLogin(ctx, creds.Username, payload, opts)
}

// tryCachedSession validates cached token material with one authenticated
// probe. Returns nil when the cached session is unusable for any reason.
func (s *AuthServiceImpl) tryCachedSession(ctx context.Context, record *domain.SessionRecord) *domain.LoginResult {
	header := record.TokenType + " " + record.AccessToken
	status, err := s.transport.ProbeAuthenticated(ctx, header)
	if err != nil || status < 200 || status >= 300 {
		// Expired and revoked tokens are indistinguishable here; both fall
		// through to a fresh login.
		return nil
	}

	s.authState.Set(header)
	s.logAudit(ctx, domain.NewAuditEvent(domain.LoginCachedReuseEvent).WithUsername(record.Username))
	return &domain.LoginResult{
		State:  domain.LoginAuthenticated,
		Detail: "logged in using cached authentication",
	}
}

func (s *AuthServiceImpl) freshLogin(ctx context.Context, username string, payload domain.LoginPayload, opts domain.LoginOptions) (*domain.LoginResult, error) {
	response, err := s.transport.PostLogin(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}

	switch {
	case response.MFARequired:
		// Nothing is persisted yet: each MFA code attempt is a discrete
		// fresh-login call decided by the caller.
		s.logAudit(ctx, domain.NewAuditEvent(domain.MFARequiredEvent).WithUsername(username))
		return &domain.LoginResult{State: domain.LoginPendingMFA}, nil

	case response.Challenge != nil:
		// The placeholder must be durable before this call returns so a
		// later stateless invocation resolving the challenge recovers the
		// device token this attempt was issued against.
		placeholder := &domain.SessionRecord{
			Username:    username,
			DeviceToken: payload.DeviceToken,
		}
		if err := s.cache.Put(ctx, placeholder); err != nil {
			return nil, fmt.Errorf("persist challenge placeholder: %w", err)
		}
		s.logAudit(ctx, domain.NewAuditEvent(domain.ChallengeIssuedEvent).
			WithUsername(username).
			WithChallengeID(response.Challenge.ID))
		return &domain.LoginResult{
			State:       domain.LoginPendingChallenge,
			ChallengeID: response.Challenge.ID,
		}, nil

	case response.AccessToken != "":
		header := response.TokenType + " " + response.AccessToken
		s.authState.Set(header)

		if opts.StoreSession {
			record := &domain.SessionRecord{
				Username:     username,
				AccessToken:  response.AccessToken,
				TokenType:    response.TokenType,
				RefreshToken: response.RefreshToken,
				DeviceToken:  payload.DeviceToken,
				ExpiresAt:    auth.TokenExpiry(response.AccessToken),
			}
			if err := s.cache.Put(ctx, record); err != nil {
				return nil, fmt.Errorf("persist session record: %w", err)
			}
		} else if err := s.cache.Delete(ctx, username); err != nil {
			// Already authenticated; a failed cleanup is not fatal.
			log.Printf("session cache delete failed: %v", err)
		}

		s.logAudit(ctx, domain.NewAuditEvent(domain.LoginSuccessEvent).WithUsername(username))
		return &domain.LoginResult{
			State:  domain.LoginAuthenticated,
			Detail: "logged in with brand new authentication code",
		}, nil

	default:
		// Server-reported rejection; surface its detail verbatim.
		s.authState.Clear()
		s.logAudit(ctx, domain.NewAuditEvent(domain.LoginFailureEvent).
			WithUsername(username).
			WithError(errors.New(response.Detail)))
		return &domain.LoginResult{State: domain.LoginFailed, Detail: response.Detail}, nil
	}
}

// ResolveChallenge implements domain.AuthService. An accepted challenge marks
// the transport session and authorizes exactly one subsequent fresh login; it
// never produces a token itself.
func (s *AuthServiceImpl) ResolveChallenge(ctx context.Context, challengeID, code string) (*domain.ChallengeResult, error) {
	if challengeID == "" {
		return nil, domain.ErrChallengeNotFound
	}

	s.mu.Lock()
	_, done := s.exhausted[challengeID]
	s.mu.Unlock()
	if done {
		return nil, domain.ErrChallengeExhausted
	}

	response, err := s.transport.PostChallengeResponse(ctx, challengeID, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}

	if response.Challenge != nil && response.Challenge.RemainingAttempts > 0 {
		s.logAudit(ctx, domain.NewAuditEvent(domain.ChallengeRetryEvent).WithChallengeID(challengeID))
		return &domain.ChallengeResult{
			State:             domain.ChallengeRecoverable,
			RemainingAttempts: response.Challenge.RemainingAttempts,
		}, nil
	}
	if response.Challenge != nil {
		s.mu.Lock()
		s.exhausted[challengeID] = struct{}{}
		s.mu.Unlock()
		s.logAudit(ctx, domain.NewAuditEvent(domain.ChallengeExhaustedEvent).
			WithChallengeID(challengeID).
			WithError(domain.ErrChallengeExhausted))
		return nil, domain.ErrChallengeExhausted
	}

	s.transport.AcceptChallenge(challengeID)
	s.logAudit(ctx, domain.NewAuditEvent(domain.ChallengeAcceptedEvent).WithChallengeID(challengeID))
	return &domain.ChallengeResult{State: domain.ChallengeAccepted}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	if !s.authState.IsLoggedIn() {
		return domain.ErrNotAuthenticated
	}
	s.authState.Clear()
	s.logAudit(ctx, domain.NewAuditEvent(domain.LogoutEvent))
	return nil
}

// IsLoggedIn implements domain.AuthService
func (s *AuthServiceImpl) IsLoggedIn() bool {
	return s.authState.IsLoggedIn()
}

func (s *AuthServiceImpl) logAudit(ctx context.Context, event *domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogEvent(ctx, event); err != nil {
		log.Printf("audit log failed: %v", err)
	}
}
