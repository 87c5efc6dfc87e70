package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/config"
	"github.com/dressforpleasure/storefront/internal/domain"
	"github.com/dressforpleasure/storefront/pkg/errors"
)

type newsletterService struct {
	customers CustomerDirectory
	workflows WorkflowForwarder
	cfg       config.NewsletterConfig
	logger    *zap.Logger
}

// NewNewsletterService creates a new newsletter intake service
func NewNewsletterService(customers CustomerDirectory, workflows WorkflowForwarder, cfg config.NewsletterConfig, logger *zap.Logger) *newsletterService {
	return &newsletterService{
		customers: customers,
		workflows: workflows,
		cfg:       cfg,
		logger:    logger,
	}
}

// welcomeEmailEvent is the payload of the best-effort welcome email trigger.
type welcomeEmailEvent struct {
	Trigger        string              `json:"trigger"`
	CustomerEmail  string              `json:"customer_email"`
	CustomerName   string              `json:"customer_name"`
	WelcomeCode    string              `json:"welcome_code"`
	DiscountAmount int                 `json:"discount_amount"`
	CustomerTier   domain.CustomerTier `json:"customer_tier"`
	Timestamp      time.Time           `json:"timestamp"`
}

// Signup validates and enriches a newsletter signup, rejects duplicates,
// and forwards the enrollment to the workflow engine. When double opt-in is
// disabled it additionally fires the welcome email trigger; that call is
// best-effort and never fails the signup.
func (s *newsletterService) Signup(ctx context.Context, req NewsletterRequest, meta RequestMeta) (*NewsletterResult, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if errs := validateNewsletter(req); len(errs) > 0 {
		return nil, &errors.ErrValidation{Details: errs}
	}

	// Unlike the contact flow, the duplicate check requires the lookup to
	// succeed: enrolling blindly could re-subscribe an existing customer.
	customer, err := s.customers.FindCustomerByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("Customer lookup failed", zap.Error(err))
		return nil, &errors.ErrUpstream{Service: "airtable", Err: err}
	}
	if customer != nil && customer.NewsletterSubscribed {
		return nil, &errors.ErrConflict{
			Message: "Diese E-Mail-Adresse ist bereits für den Newsletter angemeldet.",
		}
	}

	signup := s.enrich(req, meta, customer)

	if err := s.workflows.Forward(ctx, NewsletterEndpoint, signup); err != nil {
		s.logger.Error("Failed to forward newsletter signup",
			zap.String("welcome_code", signup.WelcomeCode),
			zap.Error(err))
		return nil, &errors.ErrUpstream{Service: "n8n", Err: err}
	}

	if !s.cfg.DoubleOptIn {
		s.sendWelcomeEmail(ctx, signup)
	}

	s.logger.Info("Newsletter signup forwarded",
		zap.String("welcome_code", signup.WelcomeCode),
		zap.Bool("existing_customer", signup.ExistingCustomer))

	message := "Erfolgreich für Newsletter angemeldet!"
	if s.cfg.DoubleOptIn {
		message = "Bestätigungs-E-Mail wurde gesendet. Bitte überprüfen Sie Ihr Postfach."
	}

	return &NewsletterResult{
		WelcomeCode:     signup.WelcomeCode,
		WelcomeDiscount: s.cfg.WelcomeDiscount,
		DoubleOptIn:     s.cfg.DoubleOptIn,
		Message:         message,
	}, nil
}

func (s *newsletterService) enrich(req NewsletterRequest, meta RequestMeta, customer *domain.CustomerRecord) *domain.NewsletterSignup {
	name := sanitizeInput(req.Name, maxNameLength)
	if name == "" {
		name = nameFromEmail(req.Email)
	}

	source := req.Source
	if source == "" {
		source = "website_newsletter"
	}

	signup := &domain.NewsletterSignup{
		Email:        req.Email,
		Name:         name,
		Timestamp:    time.Now().UTC(),
		Source:       source,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		Language:     meta.Language,
		Referrer:     meta.Referrer,
		WelcomeCode:  generateWelcomeCode(s.cfg.WelcomeCodePrefix, s.cfg.WelcomeDiscount),
		CustomerTier: domain.TierNeu,
	}

	if customer != nil {
		signup.ExistingCustomer = true
		signup.CustomerID = customer.ID
		if customer.Tier != "" {
			signup.CustomerTier = customer.Tier
		}
		signup.TotalSpent = customer.TotalSpent
		signup.TotalOrders = customer.TotalOrders
	}

	signup.EmailPreferences = determineEmailPreferences(signup)

	return signup
}

// sendWelcomeEmail fires the secondary welcome email trigger. Failures are
// logged and ignored so the outer signup still succeeds.
func (s *newsletterService) sendWelcomeEmail(ctx context.Context, signup *domain.NewsletterSignup) {
	event := welcomeEmailEvent{
		Trigger:        "welcome_series",
		CustomerEmail:  signup.Email,
		CustomerName:   signup.Name,
		WelcomeCode:    signup.WelcomeCode,
		DiscountAmount: s.cfg.WelcomeDiscount,
		CustomerTier:   signup.CustomerTier,
		Timestamp:      signup.Timestamp,
	}

	if err := s.workflows.Forward(ctx, EmailAutomationEndpoint, event); err != nil {
		s.logger.Warn("Welcome email trigger failed",
			zap.String("welcome_code", signup.WelcomeCode),
			zap.Error(err))
	}
}

func validateNewsletter(req NewsletterRequest) []string {
	var errs violations

	if !isValidEmail(req.Email) {
		errs.add("Gültige E-Mail-Adresse ist erforderlich")
	}
	if req.Name != "" && runeLen(req.Name) < minNameLength {
		errs.add("Name muss mindestens 2 Zeichen lang sein")
	}

	return errs
}

func determineEmailPreferences(signup *domain.NewsletterSignup) domain.EmailPreferences {
	prefs := domain.EmailPreferences{
		WelcomeSeries:          true,
		ProductRecommendations: true,
		TrendUpdates:           true,
		SaleNotifications:      true,
		ExclusiveOffers:        true,
	}

	if signup.CustomerTier == domain.TierVIP || signup.CustomerTier == domain.TierGold {
		prefs.VIPOffers = true
		prefs.EarlyAccess = true
	}
	if signup.TotalOrders > 5 {
		prefs.LoyaltyRewards = true
	}

	return prefs
}

// nameFromEmail derives a display name from the email's local part:
// separators become spaces, digits are dropped, words are title-cased.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	for _, r := range local {
		switch {
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(' ')
		case unicode.IsDigit(r):
			// skip
		default:
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	name := truncate(strings.Join(words, " "), 50)
	if name == "" {
		return "Liebe Kundin"
	}
	return name
}
