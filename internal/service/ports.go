package service

import (
	"context"

	"github.com/dressforpleasure/storefront/internal/domain"
)

// Workflow endpoint paths, one per logical event, all under the engine's
// webhook base URL.
const (
	ContactEndpoint         = "/contact-form"
	NewsletterEndpoint      = "/newsletter-signup"
	EmailAutomationEndpoint = "/email-automation"
)

// CustomerDirectory reads customer records from the external store.
type CustomerDirectory interface {
	FindCustomerByEmail(ctx context.Context, email string) (*domain.CustomerRecord, error)
}

// WorkflowForwarder delivers one JSON event to a named workflow endpoint.
type WorkflowForwarder interface {
	Forward(ctx context.Context, endpoint string, payload any) error
}

// BillingGateway creates product and price records in the billing provider.
type BillingGateway interface {
	CreateProduct(ctx context.Context, product domain.SyncProduct) (string, error)
	CreatePrice(ctx context.Context, stripeProductID string, product domain.SyncProduct) (string, error)
}
