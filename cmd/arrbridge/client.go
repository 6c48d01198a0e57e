package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP calls to a running arrbridge daemon.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new arrbridge API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health checks daemon liveness.
func (c *Client) Health() (*healthResponse, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/healthz")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Proxy posts one envelope to the daemon and decodes the response into
// result. A failed action surfaces the server's error message.
func (c *Client) Proxy(service, action string, data any, result any) error {
	envelope := map[string]any{
		"service": service,
		"action":  action,
		"data":    data,
	}
	jsonBody, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/api/proxy", "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var failed struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &failed) == nil && failed.Error != "" {
			return fmt.Errorf("%s %s: %s", service, action, failed.Error)
		}
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	if result != nil {
		return json.Unmarshal(body, result)
	}
	return nil
}
