package service

import (
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Length caps applied during sanitization.
const (
	maxNameLength    = 100
	maxMessageLength = 1000
)

// Minimum lengths enforced during validation.
const (
	minNameLength    = 2
	minMessageLength = 10
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// isValidEmail checks the local@domain.tld shape
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var htmlEntities = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// sanitizeInput trims, HTML-entity-escapes and length-caps a free-text
// field before it is forwarded anywhere.
func sanitizeInput(input string, maxLen int) string {
	escaped := htmlEntities.Replace(strings.TrimSpace(input))
	return truncate(escaped, maxLen)
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen])
}

// violations collects every violated validation rule so the response can
// report all of them at once.
type violations []string

func (v *violations) add(msg string) {
	*v = append(*v, msg)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// MetaFromHeader extracts best-effort client metadata from request headers.
// defaultLanguage is "unknown" for the contact flow and "de" for the
// newsletter flow.
func MetaFromHeader(h http.Header, defaultLanguage string) RequestMeta {
	meta := RequestMeta{
		IPAddress: h.Get("X-Forwarded-For"),
		UserAgent: h.Get("User-Agent"),
		Language:  h.Get("Accept-Language"),
		Referrer:  h.Get("Referer"),
	}
	if meta.IPAddress == "" {
		meta.IPAddress = h.Get("Client-IP")
	}
	if meta.IPAddress == "" {
		meta.IPAddress = "unknown"
	}
	if meta.UserAgent == "" {
		meta.UserAgent = "unknown"
	}
	if meta.Language == "" {
		meta.Language = defaultLanguage
	}
	if meta.Referrer == "" {
		meta.Referrer = "direct"
	}
	return meta
}
