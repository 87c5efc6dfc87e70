package airtable

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/config"
	"github.com/dressforpleasure/storefront/internal/domain"
)

func newTestClient(serverURL string) *Client {
	client := NewClient(config.AirtableConfig{
		BaseID:        "appTEST",
		APIKey:        "key_test",
		CustomerTable: "Customers",
		ProductTable:  "Products",
	}, zap.NewNop())
	client.baseURL = serverURL
	return client
}

func TestFindCustomerByEmail(t *testing.T) {
	var gotPath, gotFormula, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFormula = r.URL.Query().Get("filterByFormula")
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"records":[{"id":"recCUST1","fields":{
			"email":"lisa@example.com",
			"newsletter_subscribed":true,
			"customer_tier":"VIP",
			"total_spent":1250.50,
			"total_orders":8
		}}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	customer, err := client.FindCustomerByEmail(context.Background(), "lisa@example.com")

	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "/appTEST/Customers", gotPath)
	assert.Equal(t, `{email}="lisa@example.com"`, gotFormula)
	assert.Equal(t, "Bearer key_test", gotAuth)
	assert.Equal(t, "recCUST1", customer.ID)
	assert.True(t, customer.NewsletterSubscribed)
	assert.Equal(t, domain.TierVIP, customer.Tier)
	assert.Equal(t, 1250.50, customer.TotalSpent)
	assert.Equal(t, 8, customer.TotalOrders)
}

func TestFindCustomerByEmailNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"records":[]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	customer, err := client.FindCustomerByEmail(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestFindCustomerEscapesFormulaLiterals(t *testing.T) {
	var gotFormula string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFormula = r.URL.Query().Get("filterByFormula")
		fmt.Fprint(w, `{"records":[]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Quotes and backslashes must not break out of the formula string.
	_, err := client.FindCustomerByEmail(context.Background(), `li"sa@example.com`)
	require.NoError(t, err)
	assert.Equal(t, `{email}="li\"sa@example.com"`, gotFormula)

	_, err = client.FindCustomerByEmail(context.Background(), `li\sa@example.com`)
	require.NoError(t, err)
	assert.Equal(t, `{email}="li\\sa@example.com"`, gotFormula)
}

func TestFindCustomerDefaultsEmptyTier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"records":[{"id":"recCUST2","fields":{"email":"max@example.com"}}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	customer, err := client.FindCustomerByEmail(context.Background(), "max@example.com")

	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, domain.TierNeu, customer.Tier)
}

func TestFindCustomerAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"type":"AUTHENTICATION_REQUIRED"}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FindCustomerByEmail(context.Background(), "lisa@example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestListProductsFollowsPagination(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/appTEST/Products", r.URL.Path)

		switch r.URL.Query().Get("offset") {
		case "":
			fmt.Fprint(w, `{"records":[
				{"id":"rec1","fields":{"name":"Elegante Bluse","category":"oberteile","price":89.99,"featured":true,"in_stock":true}},
				{"id":"rec2","fields":{"name":"Sommerkleid","category":"kleider","price":129.99,"in_stock":true}}
			],"offset":"itrNEXT"}`)
		case "itrNEXT":
			fmt.Fprint(w, `{"records":[
				{"id":"rec3","fields":{"name":"Lederhandtasche","category":"handtaschen","price":199.99,"in_stock":false}}
			]}`)
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	require.Len(t, products, 3)
	assert.Equal(t, "rec1", products[0].ID)
	assert.Equal(t, domain.CategoryOberteile, products[0].Category)
	assert.True(t, products[0].Featured)
	assert.Equal(t, "rec3", products[2].ID)
	assert.False(t, products[2].InStock)
}

func TestListProductsEmptyTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"records":[]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProductsMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListProducts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}
