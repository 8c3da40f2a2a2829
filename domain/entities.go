package domain

import "time"

// Credentials represents the login input for a brokerage account.
// It is never persisted; only derived token material is cached.
type Credentials struct {
	Username string
	Password string
	Email    string
}

// LoginOptions carries the caller-controlled knobs of a login attempt.
type LoginOptions struct {
	// BySMS selects the challenge delivery channel: SMS when true, email otherwise.
	BySMS bool
	// StoreSession controls whether token material is persisted for reuse.
	// When false, any cached record for the username is deleted instead.
	StoreSession bool
	// MFACode is an optional multi-factor code attached to the login payload.
	MFACode string
}

// SessionRecord is the persisted session state for one username.
// A record with empty token fields is a challenge-in-progress placeholder:
// it only preserves the device token across stateless invocations and must
// never be treated as a reusable session.
type SessionRecord struct {
	Username     string    `json:"username"`
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token"`
	DeviceToken  string    `json:"device_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// HasToken reports whether the record holds reusable token material.
func (r *SessionRecord) HasToken() bool {
	return r != nil && r.AccessToken != ""
}

// LoginState enumerates the terminal and pending outcomes of a login attempt.
// The values are the wire representation the dispatch layer reports.
type LoginState string

const (
	LoginAuthenticated    LoginState = "authenticated"
	LoginPendingChallenge LoginState = "pending_challenge"
	LoginPendingMFA       LoginState = "pending_mfa"
	LoginFailed           LoginState = "failed"
)

// LoginResult represents the outcome of one Login invocation.
type LoginResult struct {
	State       LoginState
	ChallengeID string
	// Detail carries the server's error detail verbatim on LoginFailed,
	// or an informational note on LoginAuthenticated.
	Detail string
}

// ChallengeState enumerates the outcomes of a challenge-response attempt.
// The values are the wire representation the dispatch layer reports.
type ChallengeState string

const (
	ChallengeAccepted    ChallengeState = "accepted"
	ChallengeRecoverable ChallengeState = "recoverable"
)

// ChallengeResult represents the outcome of one ResolveChallenge invocation.
// An accepted challenge authorizes exactly one subsequent fresh login; it does
// not itself produce a token.
type ChallengeResult struct {
	State             ChallengeState
	RemainingAttempts int
}

// StockOrderRow is one exported completed stock order.
type StockOrderRow struct {
	Symbol       string `json:"symbol"`
	Date         string `json:"date"`
	OrderType    string `json:"order_type"`
	Side         string `json:"side"`
	Fees         string `json:"fees"`
	Quantity     string `json:"quantity"`
	AveragePrice string `json:"average_price"`
}

// OptionOrderRow is one exported leg of a completed option order.
type OptionOrderRow struct {
	ChainSymbol       string `json:"chain_symbol"`
	ExpirationDate    string `json:"expiration_date"`
	StrikePrice       string `json:"strike_price"`
	OptionType        string `json:"option_type"`
	Side              string `json:"side"`
	OrderCreatedAt    string `json:"order_created_at"`
	Direction         string `json:"direction"`
	OrderQuantity     string `json:"order_quantity"`
	OrderType         string `json:"order_type"`
	OpeningStrategy   string `json:"opening_strategy"`
	ClosingStrategy   string `json:"closing_strategy"`
	Price             string `json:"price"`
	ProcessedQuantity string `json:"processed_quantity"`
}
