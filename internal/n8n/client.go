package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/config"
)

type Client struct {
	webhookURL string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new n8n webhook client
func NewClient(cfg config.N8NConfig, logger *zap.Logger) *Client {
	return &Client{
		webhookURL: strings.TrimSuffix(cfg.WebhookURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Forward posts one JSON event to the named webhook endpoint. Any non-2xx
// response is an error.
func (c *Client) Forward(ctx context.Context, endpoint string, payload any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL+endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return fmt.Errorf("n8n webhook %s failed: status %d, body: %s",
			endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
