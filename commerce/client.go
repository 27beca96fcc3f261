// Package commerce talks to the catalog, phone registry, payment and SMS
// backends. Every request carries the client_id header.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type Config struct {
	ProductURL string
	PhoneURL   string
	PaymentURL string
	SMSURL     string
	ClientID   string
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config, httpClient *http.Client) *Client {
	config.ProductURL = strings.TrimRight(config.ProductURL, "/")
	config.PhoneURL = strings.TrimRight(config.PhoneURL, "/")
	config.PaymentURL = strings.TrimRight(config.PaymentURL, "/")
	config.SMSURL = strings.TrimRight(config.SMSURL, "/")

	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// StatusError reports an answer outside the statuses a call accepts.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: %d", e.Method, e.URL, e.StatusCode)
}

func (c *Client) GetHeaders() map[string]string {
	return map[string]string{
		"client_id":    c.config.ClientID,
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}
}

// doJSON sends body (when non-nil) as JSON and decodes the answer into out
// (when non-nil). Statuses other than the accepted ones are errors; with no
// accepted statuses given, 200 is expected.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out any, accepted ...int) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.GetHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if len(accepted) == 0 {
		accepted = []int{http.StatusOK}
	}
	if !containsStatus(accepted, resp.StatusCode) {
		return &StatusError{Method: method, URL: req.URL.Redacted(), StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	// An accepted answer without a body leaves out untouched.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func containsStatus(statuses []int, status int) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
