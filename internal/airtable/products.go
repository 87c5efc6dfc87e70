package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dressforpleasure/storefront/internal/domain"
)

type productList struct {
	Records []productRecord `json:"records"`
	Offset  string          `json:"offset"`
}

type productRecord struct {
	ID     string `json:"id"`
	Fields struct {
		Name        string  `json:"name"`
		Category    string  `json:"category"`
		Price       float64 `json:"price"`
		Image       string  `json:"image"`
		Description string  `json:"description"`
		Featured    bool    `json:"featured"`
		InStock     bool    `json:"in_stock"`
	} `json:"fields"`
}

// ListProducts fetches the product catalog, following Airtable's offset
// pagination until the table is exhausted. Record order follows the table
// view order.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	offset := ""

	for {
		query := url.Values{}
		if offset != "" {
			query.Set("offset", offset)
		}

		reqURL := fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(c.productTable))
		if len(query) > 0 {
			reqURL += "?" + query.Encode()
		}

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

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("airtable API error: status %d, body: %s", resp.StatusCode, string(body))
		}

		var list productList
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("failed to unmarshal response: %w", err)
		}

		for _, rec := range list.Records {
			products = append(products, domain.Product{
				ID:          rec.ID,
				Name:        rec.Fields.Name,
				Category:    domain.Category(rec.Fields.Category),
				Price:       rec.Fields.Price,
				Image:       rec.Fields.Image,
				Description: rec.Fields.Description,
				Featured:    rec.Fields.Featured,
				InStock:     rec.Fields.InStock,
			})
		}

		if list.Offset == "" {
			return products, nil
		}
		offset = list.Offset
	}
}
