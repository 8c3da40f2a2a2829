package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/willcheung/robinhood-export-function/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Email        string `json:"email,omitempty" binding:"omitempty,email"`
	BySMS        bool   `json:"by_sms"`
	StoreSession *bool  `json:"store_session"` // Optional, defaults to true
	MFACode      string `json:"mfa_code,omitempty"`
}

// ChallengeRequest represents a challenge-response request
type ChallengeRequest struct {
	ChallengeID string `json:"challenge_id" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// Login drives one step of the login state machine
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := domain.LoginOptions{
		BySMS:        req.BySMS,
		StoreSession: req.StoreSession == nil || *req.StoreSession,
		MFACode:      req.MFACode,
	}
	creds := domain.Credentials{Username: req.Username, Password: req.Password, Email: req.Email}

	result, err := h.authSvc.Login(c.Request.Context(), creds, opts)
	if err != nil {
		if errors.Is(err, domain.ErrConnectivity) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Brokerage unreachable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	switch result.State {
	case domain.LoginAuthenticated:
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{"state": result.State, "detail": result.Detail},
		})
	case domain.LoginPendingChallenge:
		c.JSON(http.StatusAccepted, gin.H{
			"data": gin.H{"state": result.State, "challenge_id": result.ChallengeID},
		})
	case domain.LoginPendingMFA:
		c.JSON(http.StatusAccepted, gin.H{
			"data": gin.H{"state": result.State},
		})
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": result.Detail})
	}
}

// RespondChallenge submits a challenge code
func (h *AuthHandlers) RespondChallenge(c *gin.Context) {
	var req ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.ResolveChallenge(c.Request.Context(), req.ChallengeID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrChallengeNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown challenge"})
		case errors.Is(err, domain.ErrChallengeExhausted):
			c.JSON(http.StatusForbidden, gin.H{"error": "Challenge attempts exhausted"})
		case errors.Is(err, domain.ErrConnectivity):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Brokerage unreachable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Challenge resolution failed"})
		}
		return
	}

	if result.State == domain.ChallengeAccepted {
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{"state": result.State},
		})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"data": gin.H{"state": result.State, "remaining_attempts": result.RemainingAttempts},
	})
}

// Logout drops the process authorization state
func (h *AuthHandlers) Logout(c *gin.Context) {
	if err := h.authSvc.Logout(c.Request.Context()); err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Logged out"}})
}
