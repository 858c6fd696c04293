package application

import (
	"errors"
	"strings"

	"github.com/bnema/ai-accounts-manager/internal/domain"
)

// Boundary validation: performed by the presentation layer before an
// operation reaches the repository, so the domain never sees empty names,
// malformed emails, or out-of-range day counts.

var (
	ErrEmptyProductName = errors.New("product name is required")
	ErrInvalidEmail     = errors.New("a valid email address is required")
)

func ValidateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyProductName
	}

	return nil
}

// ValidateEmail checks the local@domain shape only. Deliverability is out of
// scope for a locally-tracked identity.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return ErrInvalidEmail
	}

	domainPart := email[at+1:]
	if domainPart == "" || strings.ContainsAny(email, " \t") {
		return ErrInvalidEmail
	}

	return nil
}

func ValidateCooldownDays(days int) error {
	if !domain.ValidCooldownDays(days) {
		return domain.ErrInvalidCooldownDays
	}

	return nil
}
