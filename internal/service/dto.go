package service

// ContactRequest represents the contact form payload
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResult is returned on a successful contact submission
type ContactResult struct {
	TicketID string
	Message  string
}

// NewsletterRequest represents the newsletter signup payload
type NewsletterRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// NewsletterResult is returned on a successful signup
type NewsletterResult struct {
	WelcomeCode     string
	WelcomeDiscount int
	DoubleOptIn     bool
	Message         string
}

// RequestMeta is the best-effort client metadata attached to a submission.
// Absent values default to the "unknown"/"de"/"direct" sentinels at the
// point of extraction.
type RequestMeta struct {
	IPAddress string
	UserAgent string
	Language  string
	Referrer  string
}
