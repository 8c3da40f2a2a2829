package domain

import "errors"

// Authentication errors
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConnectivity       = errors.New("brokerage unreachable")
)

// Challenge errors
var (
	ErrChallengeExhausted = errors.New("challenge attempts exhausted")
	ErrChallengeNotFound  = errors.New("challenge not found")
)

// Session cache errors
var (
	ErrSessionNotFound = errors.New("session record not found")
	ErrStorage         = errors.New("session cache unavailable")
)
