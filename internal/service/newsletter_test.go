package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/config"
	"github.com/dressforpleasure/storefront/internal/domain"
	"github.com/dressforpleasure/storefront/internal/service"
	pkgerrors "github.com/dressforpleasure/storefront/pkg/errors"
)

func newsletterConfig() config.NewsletterConfig {
	return config.NewsletterConfig{
		WelcomeDiscount:   15,
		WelcomeCodePrefix: "WELCOME",
		DoubleOptIn:       false,
	}
}

func TestNewsletterSignupSuccess(t *testing.T) {
	customers := new(MockCustomerDirectory)
	workflows := new(MockWorkflowForwarder)
	customers.On("FindCustomerByEmail", mock.Anything, "lisa@example.com").Return(nil, nil)

	var signup *domain.NewsletterSignup
	workflows.On("Forward", mock.Anything, service.NewsletterEndpoint, mock.Anything).
		Run(func(args mock.Arguments) {
			signup = args.Get(2).(*domain.NewsletterSignup)
		}).Return(nil)
	workflows.On("Forward", mock.Anything, service.EmailAutomationEndpoint, mock.Anything).Return(nil)

	svc := service.NewNewsletterService(customers, workflows, newsletterConfig(), zap.NewNop())
	result, err := svc.Signup(context.Background(),
		service.NewsletterRequest{Email: "Lisa@Example.com "},
		service.RequestMeta{IPAddress: "unknown", UserAgent: "unknown", Language: "de", Referrer: "direct"})
	require.NoError(t, err)

	assert.Equal(t, "Erfolgreich für Newsletter angemeldet!", result.Message)
	assert.Equal(t, 15, result.WelcomeDiscount)
	assert.True(t, strings.HasPrefix(result.WelcomeCode, "WELCOME15-"))

	require.NotNil(t, signup)
	assert.Equal(t, "lisa@example.com", signup.Email)
	assert.Equal(t, "Lisa", signup.Name)
	assert.Equal(t, "website_newsletter", signup.Source)
	assert.Equal(t, domain.TierNeu, signup.CustomerTier)
	assert.True(t, signup.EmailPreferences.WelcomeSeries)
	assert.False(t, signup.EmailPreferences.VIPOffers)

	// Welcome email fires when double opt-in is off.
	workflows.AssertCalled(t, "Forward", mock.Anything, service.EmailAutomationEndpoint, mock.Anything)
}

func TestNewsletterInvalidEmailNoExternalCalls(t *testing.T) {
	customers := new(MockCustomerDirectory)
	workflows := new(MockWorkflowForwarder)
	svc := service.NewNewsletterService(customers, workflows, newsletterConfig(), zap.NewNop())

	_, err := svc.Signup(context.Background(),
		service.NewsletterRequest{Email: "not-an-email"}, service.RequestMeta{})

	var validationErr *pkgerrors.ErrValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Details, "Gültige E-Mail-Adresse ist erforderlich")

	customers.AssertNotCalled(t, "FindCustomerByEmail", mock.Anything, mock.Anything)
	workflows.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewsletterAlreadySubscribedConflict(t *testing.T) {
	customers := new(MockCustomerDirectory)
	workflows := new(MockWorkflowForwarder)
	customers.On("FindCustomerByEmail", mock.Anything, "lisa@example.com").
		Return(&domain.CustomerRecord{
			ID:                   "rec1",
			Email:                "lisa@example.com",
			NewsletterSubscribed: true,
		}, nil)

	svc := service.NewNewsletterService(customers, workflows, newsletterConfig(), zap.NewNop())
	_, err := svc.Signup(context.Background(),
		service.NewsletterRequest{Email: "lisa@example.com"}, service.RequestMeta{})

	var conflictErr *pkgerrors.ErrConflict
	require.ErrorAs(t, err, &conflictErr)
	workflows.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewsletterLookupFailureIsUpstreamError(t *testing.T) {
	customers := new(MockCustomerDirectory)
	workflows := new(MockWorkflowForwarder)
	customers.On("FindCustomerByEmail", mock.Anything, mock.Anything).
		Return(nil, errors.New("airtable down"))

	svc := service.NewNewsletterService(customers, workflows, newsletterConfig(), zap.NewNop())
	_, err := svc.Signup(context.Background(),
		service.NewsletterRequest{Email: "lisa@example.com"}, service.RequestMeta{})

	var upstreamErr *pkgerrors.ErrUpstream
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "airtable", upstreamErr.Service)
	workflows.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewsletterExistingCustomerEnrichment(t *testing.T) {
	customers := new(MockCustomerDirectory)
	workflows := new(MockWorkflowForwarder)
	customers.On("FindCustomerByEmail", mock.Anything, "vip@example.com").
		Return(&domain.CustomerRecord{
			ID:          "recVIP",
			Email:       "vip@example.com",
			Tier:        domain.TierVIP,
			TotalSpent:  1234.56,
			TotalOrders: 8,
		}, nil)

	var signup *domain.NewsletterSignup
	workflows.On("Forward", mock.Anything, service.NewsletterEndpoint, mock.Anything).
		Run(func(args mock.Arguments) {
			signup = args.Get(2).(*domain.NewsletterSignup)
		}).Return(nil)
	workflows.On("Forward", mock.Anything, service.EmailAutomationEndpoint, mock.Anything).Return(nil)

	svc := service.NewNewsletterService(customers, workflows, newsletterConfig(), zap.NewNop())
	_, err := svc.Signup(context.Background(),
		service.NewsletterRequest{Email: "vip@example.com"}, service.RequestMeta{})
	require.NoError(t, err)

	assert.True(t, signup.ExistingCustomer)
	assert.Equal(t, domain.TierVIP, signup.CustomerTier)
	assert.Equal(t, 8, signup.TotalOrders)
	assert.True(t, signup.EmailPreferences.VIPOffers)
	assert.True(t, signup.EmailPreferences.EarlyAccess)
	assert.True(t, signup.EmailPreferences.LoyaltyRewards)
}

func TestNewsletterWelcomeEmailFailureDoesNotFailSignup(t *testing.T) {
	customers := new(MockCustomerDirectory)
	workflows := new(MockWorkflowForwarder)
	customers.On("FindCustomerByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	workflows.On("Forward", mock.Anything, service.NewsletterEndpoint, mock.Anything).Return(nil)
	workflows.On("Forward", mock.Anything, service.EmailAutomationEndpoint, mock.Anything).
		Return(errors.New("email automation down"))

	svc := service.NewNewsletterService(customers, workflows, newsletterConfig(), zap.NewNop())
	result, err := svc.Signup(context.Background(),
		service.NewsletterRequest{Email: "lisa@example.com"}, service.RequestMeta{})

	require.NoError(t, err)
	assert.NotEmpty(t, result.WelcomeCode)
}

func TestNewsletterDoubleOptInSkipsWelcomeEmail(t *testing.T) {
	customers := new(MockCustomerDirectory)
	workflows := new(MockWorkflowForwarder)
	customers.On("FindCustomerByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	workflows.On("Forward", mock.Anything, service.NewsletterEndpoint, mock.Anything).Return(nil)

	cfg := newsletterConfig()
	cfg.DoubleOptIn = true

	svc := service.NewNewsletterService(customers, workflows, cfg, zap.NewNop())
	result, err := svc.Signup(context.Background(),
		service.NewsletterRequest{Email: "lisa@example.com"}, service.RequestMeta{})
	require.NoError(t, err)

	assert.True(t, result.DoubleOptIn)
	assert.Equal(t, "Bestätigungs-E-Mail wurde gesendet. Bitte überprüfen Sie Ihr Postfach.", result.Message)
	workflows.AssertNotCalled(t, "Forward", mock.Anything, service.EmailAutomationEndpoint, mock.Anything)
}

func TestNewsletterPrimaryForwardFailureIsUpstreamError(t *testing.T) {
	customers := new(MockCustomerDirectory)
	workflows := new(MockWorkflowForwarder)
	customers.On("FindCustomerByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	workflows.On("Forward", mock.Anything, service.NewsletterEndpoint, mock.Anything).
		Return(errors.New("status 500"))

	svc := service.NewNewsletterService(customers, workflows, newsletterConfig(), zap.NewNop())
	_, err := svc.Signup(context.Background(),
		service.NewsletterRequest{Email: "lisa@example.com"}, service.RequestMeta{})

	var upstreamErr *pkgerrors.ErrUpstream
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "n8n", upstreamErr.Service)
}

func TestNewsletterShortOptionalNameRejected(t *testing.T) {
	customers := new(MockCustomerDirectory)
	workflows := new(MockWorkflowForwarder)

	svc := service.NewNewsletterService(customers, workflows, newsletterConfig(), zap.NewNop())
	_, err := svc.Signup(context.Background(),
		service.NewsletterRequest{Email: "lisa@example.com", Name: "L"}, service.RequestMeta{})

	var validationErr *pkgerrors.ErrValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Details, "Name muss mindestens 2 Zeichen lang sein")
}
