package brokerage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/willcheung/robinhood-export-function/domain"
)

const (
	loginPath        = "/oauth2/token/"
	challengePath    = "/challenge/%s/respond/"
	portfoliosPath   = "/portfolios/"
	stockOrdersPath  = "/orders/"
	optionOrdersPath = "/options/orders/"

	// challengeHeader carries the acceptance marker for a resolved challenge;
	// the brokerage honors it on the next token-exchange call only.
	challengeHeader = "X-Challenge-Response-ID"
)

// Client talks to the brokerage HTTP API. It implements both
// domain.AuthTransport and domain.OrderTransport.
type Client struct {
	http    *http.Client
	baseURL string

	mu          sync.RWMutex
	challengeID string
}

// NewClient creates a brokerage client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// AcceptChallenge implements domain.AuthTransport
func (c *Client) AcceptChallenge(challengeID string) {
	c.mu.Lock()
	c.challengeID = challengeID
	c.mu.Unlock()
}

// PostLogin implements domain.AuthTransport
func (c *Client) PostLogin(ctx context.Context, payload domain.LoginPayload) (*domain.LoginResponse, error) {
	var response domain.LoginResponse
	if err := c.postJSON(ctx, c.baseURL+loginPath, payload, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// PostChallengeResponse implements domain.AuthTransport
func (c *Client) PostChallengeResponse(ctx context.Context, challengeID, code string) (*domain.ChallengeResponse, error) {
	url := c.baseURL + fmt.Sprintf(challengePath, challengeID)
	body := map[string]string{"response": code}

	var response domain.ChallengeResponse
	if err := c.postJSON(ctx, url, body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// ProbeAuthenticated implements domain.AuthTransport
func (c *Client) ProbeAuthenticated(ctx context.Context, header string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+portfoliosPath, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", header)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("probe request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// GetStockOrders implements domain.OrderTransport
func (c *Client) GetStockOrders(ctx context.Context, header string) ([]domain.StockOrder, error) {
	var page struct {
		Results []domain.StockOrder `json:"results"`
	}
	if err := c.getJSON(ctx, c.baseURL+stockOrdersPath, header, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// GetOptionOrders implements domain.OrderTransport
func (c *Client) GetOptionOrders(ctx context.Context, header string) ([]domain.OptionOrder, error) {
	var page struct {
		Results []domain.OptionOrder `json:"results"`
	}
	if err := c.getJSON(ctx, c.baseURL+optionOrdersPath, header, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// GetInstrument implements domain.OrderTransport
func (c *Client) GetInstrument(ctx context.Context, header, url string) (*domain.Instrument, error) {
	var instrument domain.Instrument
	if err := c.getJSON(ctx, url, header, &instrument); err != nil {
		return nil, err
	}
	return &instrument, nil
}

// GetOptionInstrument implements domain.OrderTransport
func (c *Client) GetOptionInstrument(ctx context.Context, header, url string) (*domain.OptionInstrument, error) {
	var instrument domain.OptionInstrument
	if err := c.getJSON(ctx, url, header, &instrument); err != nil {
		return nil, err
	}
	return &instrument, nil
}

func (c *Client) postJSON(ctx context.Context, url string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.mu.RLock()
	if c.challengeID != "" {
		req.Header.Set(challengeHeader, c.challengeID)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// The brokerage reports protocol-level outcomes (challenge, mfa_required,
	// error detail) in the body on non-2xx statuses too, so decode regardless.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, url, header string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", header)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
