package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/config"
	"github.com/dressforpleasure/storefront/internal/domain"
)

const defaultBaseURL = "https://api.airtable.com/v0"

type Client struct {
	baseURL       string
	baseID        string
	apiKey        string
	customerTable string
	productTable  string
	httpClient    *http.Client
	logger        *zap.Logger
}

// NewClient creates a new Airtable REST client
func NewClient(cfg config.AirtableConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:       defaultBaseURL,
		baseID:        cfg.BaseID,
		apiKey:        cfg.APIKey,
		customerTable: cfg.CustomerTable,
		productTable:  cfg.ProductTable,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// recordList mirrors Airtable's list-records response shape
type recordList struct {
	Records []record `json:"records"`
}

type record struct {
	ID     string       `json:"id"`
	Fields recordFields `json:"fields"`
}

type recordFields struct {
	Email                string  `json:"email"`
	NewsletterSubscribed bool    `json:"newsletter_subscribed"`
	CustomerTier         string  `json:"customer_tier"`
	TotalSpent           float64 `json:"total_spent"`
	TotalOrders          int     `json:"total_orders"`
}

// formulaEscaper escapes a value for use inside an Airtable formula string
// literal. Formulas only recognize backslash escapes for `\` and `"`; Go's
// %q would additionally emit \u escapes Airtable does not understand.
var formulaEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// FindCustomerByEmail looks up a customer record by exact email match.
// Returns nil without error when no record matches.
func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (*domain.CustomerRecord, error) {
	query := url.Values{}
	query.Set("filterByFormula", fmt.Sprintf(`{email}="%s"`, formulaEscaper.Replace(email)))
	query.Set("maxRecords", "1")

	reqURL := fmt.Sprintf("%s/%s/%s?%s",
		c.baseURL, c.baseID, url.PathEscape(c.customerTable), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("airtable API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var list recordList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(list.Records) == 0 {
		return nil, nil
	}

	rec := list.Records[0]
	customer := &domain.CustomerRecord{
		ID:                   rec.ID,
		Email:                rec.Fields.Email,
		NewsletterSubscribed: rec.Fields.NewsletterSubscribed,
		Tier:                 domain.CustomerTier(rec.Fields.CustomerTier),
		TotalSpent:           rec.Fields.TotalSpent,
		TotalOrders:          rec.Fields.TotalOrders,
	}
	if customer.Tier == "" {
		customer.Tier = domain.TierNeu
	}

	return customer, nil
}
