package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dressforpleasure/storefront/internal/domain"
)

type MockCustomerDirectory struct {
	mock.Mock
}

func (m *MockCustomerDirectory) FindCustomerByEmail(ctx context.Context, email string) (*domain.CustomerRecord, error) {
	args := m.Called(ctx, email)
	var rec *domain.CustomerRecord
	if v := args.Get(0); v != nil {
		rec = v.(*domain.CustomerRecord)
	}
	return rec, args.Error(1)
}

type MockWorkflowForwarder struct {
	mock.Mock
}

func (m *MockWorkflowForwarder) Forward(ctx context.Context, endpoint string, payload any) error {
	args := m.Called(ctx, endpoint, payload)
	return args.Error(0)
}

type MockBillingGateway struct {
	mock.Mock
}

func (m *MockBillingGateway) CreateProduct(ctx context.Context, product domain.SyncProduct) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

func (m *MockBillingGateway) CreatePrice(ctx context.Context, stripeProductID string, product domain.SyncProduct) (string, error) {
	args := m.Called(ctx, stripeProductID, product)
	return args.String(0), args.Error(1)
}
