package domain

// LoginPayload is the body of the token-exchange request sent to the
// brokerage. Field names follow the brokerage's OAuth-style endpoint.
type LoginPayload struct {
	ClientID      string `json:"client_id"`
	ExpiresIn     int    `json:"expires_in"`
	GrantType     string `json:"grant_type"`
	Password      string `json:"password"`
	Scope         string `json:"scope"`
	Username      string `json:"username"`
	ChallengeType string `json:"challenge_type"`
	DeviceToken   string `json:"device_token"`
	MFACode       string `json:"mfa_code,omitempty"`
}

// Challenge is the brokerage's description of a pending out-of-band
// verification step.
type Challenge struct {
	ID                string `json:"id"`
	RemainingAttempts int    `json:"remaining_attempts"`
}

// LoginResponse is the decoded body of a token-exchange response. Exactly one
// of the token fields, MFARequired, Challenge, or Detail is meaningful.
type LoginResponse struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type"`
	RefreshToken string     `json:"refresh_token"`
	MFARequired  bool       `json:"mfa_required"`
	Challenge    *Challenge `json:"challenge"`
	Detail       string     `json:"detail"`
}

// ChallengeResponse is the decoded body of a challenge-response request.
type ChallengeResponse struct {
	Challenge *Challenge `json:"challenge"`
	Detail    string     `json:"detail"`
}

// StockOrder is a raw stock order as returned by the brokerage.
type StockOrder struct {
	Instrument        string  `json:"instrument"`
	State             string  `json:"state"`
	Cancel            *string `json:"cancel"`
	LastTransactionAt string  `json:"last_transaction_at"`
	Type              string  `json:"type"`
	Side              string  `json:"side"`
	Fees              string  `json:"fees"`
	Quantity          string  `json:"quantity"`
	AveragePrice      string  `json:"average_price"`
}

// OptionLeg is one leg of a raw option order.
type OptionLeg struct {
	Option string `json:"option"`
	Side   string `json:"side"`
}

// OptionOrder is a raw option order as returned by the brokerage.
type OptionOrder struct {
	ChainSymbol       string      `json:"chain_symbol"`
	State             string      `json:"state"`
	CreatedAt         string      `json:"created_at"`
	Direction         string      `json:"direction"`
	Quantity          string      `json:"quantity"`
	Type              string      `json:"type"`
	OpeningStrategy   string      `json:"opening_strategy"`
	ClosingStrategy   string      `json:"closing_strategy"`
	Price             string      `json:"price"`
	ProcessedQuantity string      `json:"processed_quantity"`
	Legs              []OptionLeg `json:"legs"`
}

// Instrument is the subset of an equity instrument needed for export.
type Instrument struct {
	Symbol string `json:"symbol"`
}

// OptionInstrument is the subset of an option instrument needed for export.
type OptionInstrument struct {
	ExpirationDate string `json:"expiration_date"`
	StrikePrice    string `json:"strike_price"`
	Type           string `json:"type"`
}
