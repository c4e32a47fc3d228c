package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GatewayClient posts messages to an HTTP SMS gateway. A disabled client
// drops messages silently so callers need no enabled check.
type GatewayClient struct {
	url      string
	apiKey   string
	senderID string
	enabled  bool
	client   *http.Client
}

func NewGatewayClient(url, apiKey, senderID string, enabled bool) *GatewayClient {
	return &GatewayClient{
		url:      url,
		apiKey:   apiKey,
		senderID: senderID,
		enabled:  enabled && url != "",
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

func (g *GatewayClient) Send(ctx context.Context, phone, message string) error {
	if !g.enabled {
		return nil
	}

	body, err := json.Marshal(sendRequest{
		To:      phone,
		From:    g.senderID,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call sms gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
