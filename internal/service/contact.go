package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/domain"
	"github.com/dressforpleasure/storefront/pkg/errors"
)

type contactService struct {
	customers CustomerDirectory
	workflows WorkflowForwarder
	logger    *zap.Logger
}

// NewContactService creates a new contact intake service
func NewContactService(customers CustomerDirectory, workflows WorkflowForwarder, logger *zap.Logger) *contactService {
	return &contactService{
		customers: customers,
		workflows: workflows,
		logger:    logger,
	}
}

// Submit validates, sanitizes and enriches a contact submission, then
// forwards it to the workflow engine. The customer lookup is best-effort;
// the webhook forward is not.
func (s *contactService) Submit(ctx context.Context, req ContactRequest, meta RequestMeta) (*ContactResult, error) {
	if errs := validateContact(req); len(errs) > 0 {
		return nil, &errors.ErrValidation{Details: errs}
	}

	subject := domain.ContactSubject(req.Subject)

	submission := &domain.ContactSubmission{
		Name:           sanitizeInput(req.Name, maxNameLength),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:        subject,
		SubjectDisplay: subject.DisplayName(),
		Message:        sanitizeInput(req.Message, maxMessageLength),
		Timestamp:      time.Now().UTC(),
		Source:         "website_contact_form",
		TicketID:       generateTicketID(),
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
		Language:       meta.Language,
	}

	// Lookup failures must not block the submission.
	customer, err := s.customers.FindCustomerByEmail(ctx, submission.Email)
	if err != nil {
		s.logger.Warn("Could not check customer status",
			zap.String("ticket_id", submission.TicketID),
			zap.Error(err))
	} else if customer != nil {
		submission.IsExistingCustomer = true
		submission.CustomerID = customer.ID
		submission.CustomerTier = customer.Tier
		if submission.CustomerTier == "" {
			submission.CustomerTier = domain.TierNeu
		}
	}

	if err := s.workflows.Forward(ctx, ContactEndpoint, submission); err != nil {
		s.logger.Error("Failed to forward contact submission",
			zap.String("ticket_id", submission.TicketID),
			zap.Error(err))
		return nil, &errors.ErrUpstream{Service: "n8n", Err: err}
	}

	s.logger.Info("Contact submission forwarded",
		zap.String("ticket_id", submission.TicketID),
		zap.String("subject", string(submission.Subject)))

	return &ContactResult{
		TicketID: submission.TicketID,
		Message:  "Nachricht erfolgreich gesendet",
	}, nil
}

func validateContact(req ContactRequest) []string {
	var errs violations

	if runeLen(req.Name) < minNameLength {
		errs.add("Name ist erforderlich (mindestens 2 Zeichen)")
	}
	if !isValidEmail(strings.TrimSpace(req.Email)) {
		errs.add("Gültige E-Mail-Adresse ist erforderlich")
	}
	if runeLen(req.Message) < minMessageLength {
		errs.add("Nachricht ist erforderlich (mindestens 10 Zeichen)")
	}
	if req.Subject == "" {
		errs.add("Betreff ist erforderlich")
	} else if !domain.ContactSubject(req.Subject).IsValid() {
		errs.add("Ungültiger Betreff")
	}

	return errs
}
