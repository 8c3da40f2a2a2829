package domain

import "context"

// SessionCache defines access to persisted session records, keyed by
// username. Each operation is independently atomic and writes are durable
// before the call returns.
type SessionCache interface {
	Get(ctx context.Context, username string) (*SessionRecord, error)
	Put(ctx context.Context, record *SessionRecord) error
	Delete(ctx context.Context, username string) error
}

// AuthTransport is the outbound capability the auth core needs from the
// brokerage API.
type AuthTransport interface {
	PostLogin(ctx context.Context, payload LoginPayload) (*LoginResponse, error)
	PostChallengeResponse(ctx context.Context, challengeID, code string) (*ChallengeResponse, error)
	// ProbeAuthenticated issues one authenticated request and returns the
	// HTTP status, used to validate a cached token.
	ProbeAuthenticated(ctx context.Context, header string) (int, error)
	// AcceptChallenge marks a challenge as accepted at the transport-session
	// level; subsequent login calls carry the acceptance marker.
	AcceptChallenge(challengeID string)
}

// OrderTransport is the outbound capability the export layer needs from the
// brokerage API. Every call is authenticated with the given header.
type OrderTransport interface {
	GetStockOrders(ctx context.Context, header string) ([]StockOrder, error)
	GetOptionOrders(ctx context.Context, header string) ([]OptionOrder, error)
	GetInstrument(ctx context.Context, header, url string) (*Instrument, error)
	GetOptionInstrument(ctx context.Context, header, url string) (*OptionInstrument, error)
}

// DeviceTokenGenerator produces client-side device identifiers used by the
// brokerage to recognize a previously challenged device.
type DeviceTokenGenerator interface {
	Generate() string
}

// AuthState exposes read access to the process-wide authorization state.
// The auth service is the single writer.
type AuthState interface {
	IsLoggedIn() bool
	AuthorizationHeader() (string, bool)
}

// AuthService defines the login protocol state machine.
type AuthService interface {
	Login(ctx context.Context, creds Credentials, opts LoginOptions) (*LoginResult, error)
	ResolveChallenge(ctx context.Context, challengeID, code string) (*ChallengeResult, error)
	Logout(ctx context.Context) error
	IsLoggedIn() bool
}

// ExportService defines the login-gated trade-history exports.
type ExportService interface {
	CompletedStockOrders(ctx context.Context) ([]StockOrderRow, error)
	CompletedOptionOrders(ctx context.Context) ([]OptionOrderRow, error)
}
