package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/config"
	"github.com/dressforpleasure/storefront/internal/domain"
)

const defaultBaseURL = "https://api.stripe.com/v1"

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Stripe REST client
func NewClient(cfg config.StripeConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// CreateProduct creates a billing product record tagged with the originating
// catalog identifier and returns the Stripe product ID.
func (c *Client) CreateProduct(ctx context.Context, product domain.SyncProduct) (string, error) {
	form := url.Values{}
	form.Set("name", product.Name)
	form.Set("description", product.Description)
	if product.ImageURL != "" {
		form.Set("images[0]", product.ImageURL)
	}
	form.Set("metadata[airtable_id]", product.AirtableID)
	form.Set("metadata[category]", product.Category)
	form.Set("metadata[sku]", product.SKU)

	return c.create(ctx, "/products", form)
}

// CreatePrice creates the price record for a previously created product.
// The amount is converted to integer minor units by rounding price*100.
func (c *Client) CreatePrice(ctx context.Context, stripeProductID string, product domain.SyncProduct) (string, error) {
	unitAmount := int64(math.Round(product.Price * 100))

	form := url.Values{}
	form.Set("unit_amount", strconv.FormatInt(unitAmount, 10))
	form.Set("currency", "eur")
	form.Set("product", stripeProductID)
	form.Set("metadata[airtable_id]", product.AirtableID)

	return c.create(ctx, "/prices", form)
}

func (c *Client) create(ctx context.Context, path string, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stripe API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("stripe response missing id: %s", string(body))
	}

	return result.ID, nil
}
