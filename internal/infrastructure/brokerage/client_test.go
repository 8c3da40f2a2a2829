package brokerage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/willcheung/robinhood-export-function/domain"
)

func TestClient_PostLogin(t *testing.T) {
	var gotPayload domain.LoginPayload
	var gotChallengeHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth2/token/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		gotChallengeHeader = r.Header.Get("X-Challenge-Response-ID")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "token-abc",
			"token_type":    "Bearer",
			"refresh_token": "refresh-abc",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	payload := domain.LoginPayload{
		ClientID:      "client-id",
		GrantType:     "password",
		Username:      "user@example.com",
		Password:      "secret",
		ChallengeType: "sms",
		DeviceToken:   "11111111-2222-3333-4444-555555555555",
	}

	resp, err := client.PostLogin(context.Background(), payload)
	if err != nil {
		t.Fatalf("PostLogin: %v", err)
	}
	if resp.AccessToken != "token-abc" || resp.TokenType != "Bearer" {
		t.Errorf("unexpected response %+v", resp)
	}
	if gotPayload.Username != payload.Username || gotPayload.DeviceToken != payload.DeviceToken {
		t.Errorf("payload not forwarded verbatim: %+v", gotPayload)
	}
	if gotChallengeHeader != "" {
		t.Errorf("challenge header sent without an accepted challenge: %q", gotChallengeHeader)
	}
}

func TestClient_PostLogin_CarriesAcceptanceMarker(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Challenge-Response-ID")
		json.NewEncoder(w).Encode(map[string]any{"access_token": "t", "token_type": "Bearer"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	client.AcceptChallenge("challenge-1")

	if _, err := client.PostLogin(context.Background(), domain.LoginPayload{}); err != nil {
		t.Fatalf("PostLogin: %v", err)
	}
	if gotHeader != "challenge-1" {
		t.Errorf("acceptance marker = %q, want %q", gotHeader, "challenge-1")
	}
}

func TestClient_PostLogin_DecodesErrorBodyOnNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"detail": "invalid credentials"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	resp, err := client.PostLogin(context.Background(), domain.LoginPayload{})
	if err != nil {
		t.Fatalf("PostLogin: %v", err)
	}
	if resp.Detail != "invalid credentials" {
		t.Errorf("detail = %q, want server detail verbatim", resp.Detail)
	}
}

func TestClient_PostChallengeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/challenge/challenge-1/respond/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["response"] != "123456" {
			t.Errorf("code = %q, want 123456", body["response"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"challenge": map[string]any{"id": "challenge-1", "remaining_attempts": 2},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	resp, err := client.PostChallengeResponse(context.Background(), "challenge-1", "123456")
	if err != nil {
		t.Fatalf("PostChallengeResponse: %v", err)
	}
	if resp.Challenge == nil || resp.Challenge.RemainingAttempts != 2 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestClient_ProbeAuthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/portfolios/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer token-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	status, err := client.ProbeAuthenticated(context.Background(), "Bearer token-abc")
	if err != nil {
		t.Fatalf("ProbeAuthenticated: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}

	status, err = client.ProbeAuthenticated(context.Background(), "Bearer stale")
	if err != nil {
		t.Fatalf("ProbeAuthenticated stale: %v", err)
	}
	if status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.PostLogin(context.Background(), domain.LoginPayload{}); err == nil {
		t.Error("expected error against closed server")
	}
	if _, err := client.ProbeAuthenticated(context.Background(), "Bearer t"); err == nil {
		t.Error("expected probe error against closed server")
	}
}

func TestClient_GetStockOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer token-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"state": "filled", "side": "buy", "quantity": "10.0"},
				{"state": "cancelled", "side": "sell", "quantity": "1.0"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	orders, err := client.GetStockOrders(context.Background(), "Bearer token-abc")
	if err != nil {
		t.Fatalf("GetStockOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].State != "filled" || orders[0].Quantity != "10.0" {
		t.Errorf("unexpected first order %+v", orders[0])
	}

	if _, err := client.GetStockOrders(context.Background(), "Bearer stale"); err == nil {
		t.Error("expected error on 401 order fetch")
	}
}

func TestClient_GetInstrument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"symbol": "AAPL"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	instrument, err := client.GetInstrument(context.Background(), "Bearer t", server.URL+"/instruments/abc/")
	if err != nil {
		t.Fatalf("GetInstrument: %v", err)
	}
	if instrument.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", instrument.Symbol)
	}
}
