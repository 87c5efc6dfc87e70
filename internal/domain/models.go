package domain

import "time"

// Product represents a catalog product. Products are owned by the external
// catalog store and are read-only from the storefront's perspective.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Featured    bool     `json:"featured"`
	InStock     bool     `json:"inStock"`
}

// CartItem is a product line in the cart. Quantity is always >= 1; a
// quantity of zero or less removes the line.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartState is the persisted shape of the cart. Total and Count are derived
// from Items and recomputed after every mutation.
type CartState struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

// ContactSubmission is an enriched contact form submission. It exists only
// for the duration of one request; persistence happens downstream.
type ContactSubmission struct {
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Subject        ContactSubject `json:"subject"`
	SubjectDisplay string         `json:"subjectDisplay"`
	Message        string         `json:"message"`
	Timestamp      time.Time      `json:"timestamp"`
	Source         string         `json:"source"`
	TicketID       string         `json:"ticketId"`

	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`
	Language  string `json:"language"`

	IsExistingCustomer bool         `json:"isExistingCustomer"`
	CustomerID         string       `json:"customerId,omitempty"`
	CustomerTier       CustomerTier `json:"customerTier,omitempty"`
}

// NewsletterSignup is an enriched newsletter subscription request.
type NewsletterSignup struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`

	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`
	Language  string `json:"language"`
	Referrer  string `json:"referrer"`

	WelcomeCode string `json:"welcomeCode"`

	ExistingCustomer bool         `json:"existingCustomer"`
	CustomerID       string       `json:"customerId,omitempty"`
	CustomerTier     CustomerTier `json:"customerTier"`
	TotalSpent       float64      `json:"totalSpent"`
	TotalOrders      int          `json:"totalOrders"`

	EmailPreferences EmailPreferences `json:"emailPreferences"`
}

// EmailPreferences are the derived mailing flags attached to a signup.
type EmailPreferences struct {
	WelcomeSeries          bool `json:"welcomeSeries"`
	ProductRecommendations bool `json:"productRecommendations"`
	TrendUpdates           bool `json:"trendUpdates"`
	SaleNotifications      bool `json:"saleNotifications"`
	ExclusiveOffers        bool `json:"exclusiveOffers"`
	VIPOffers              bool `json:"vipOffers,omitempty"`
	EarlyAccess            bool `json:"earlyAccess,omitempty"`
	LoyaltyRewards         bool `json:"loyaltyRewards,omitempty"`
}

// CustomerRecord is a read-only view of a customer in the external store.
// Records are looked up by exact email match and never mutated here.
type CustomerRecord struct {
	ID                   string
	Email                string
	NewsletterSubscribed bool
	Tier                 CustomerTier
	TotalSpent           float64
	TotalOrders          int
}

// SyncProduct is one catalog record submitted to the billing sync.
type SyncProduct struct {
	AirtableID  string  `json:"airtable_id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// SyncedProduct pairs a catalog record with the billing identifiers
// created for it.
type SyncedProduct struct {
	AirtableID      string  `json:"airtable_id"`
	StripeProductID string  `json:"stripe_product_id"`
	StripePriceID   string  `json:"stripe_price_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
}
