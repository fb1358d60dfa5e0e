package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrPaymentUnavailable = errors.New("payment processor unavailable")

// PaymentIntenter is the opaque "create payment intent" call the platform
// delegates to. The processor itself is an external collaborator.
type PaymentIntenter interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}

// PaymentClient talks to the processor's REST endpoint.
type PaymentClient struct {
	URL    string
	APIKey string
	HTTP   *http.Client
}

func NewPaymentClient(url, apiKey string) *PaymentClient {
	return &PaymentClient{URL: url, APIKey: apiKey, HTTP: &http.Client{Timeout: 15 * time.Second}}
}

func (c *PaymentClient) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	if c.URL == "" {
		return "", ErrPaymentUnavailable
	}
	body, err := json.Marshal(map[string]any{
		"amount":   amountCents,
		"currency": currency,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("create intent: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("create intent: processor returned %d", resp.StatusCode)
	}

	var out struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ClientSecret == "" {
		return "", errors.New("create intent: empty client secret")
	}
	return out.ClientSecret, nil
}
