package application_test

import (
	"testing"

	"github.com/bnema/ai-accounts-manager/internal/application"
	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateProductName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, application.ValidateProductName("ChatGPT Plus"))
	assert.ErrorIs(t, application.ValidateProductName(""), application.ErrEmptyProductName)
	assert.ErrorIs(t, application.ValidateProductName("   "), application.ErrEmptyProductName)
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "plain address", email: "user@example.com", valid: true},
		{name: "subdomain", email: "user@mail.example.com", valid: true},
		{name: "surrounding whitespace trimmed", email: "  user@example.com  ", valid: true},
		{name: "empty", email: "", valid: false},
		{name: "missing at", email: "userexample.com", valid: false},
		{name: "missing local part", email: "@example.com", valid: false},
		{name: "missing domain", email: "user@", valid: false},
		{name: "double at", email: "user@@example.com", valid: false},
		{name: "inner whitespace", email: "us er@example.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := application.ValidateEmail(tt.email)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, application.ErrInvalidEmail)
		})
	}
}

func TestValidateCooldownDays(t *testing.T) {
	t.Parallel()

	assert.NoError(t, application.ValidateCooldownDays(1))
	assert.NoError(t, application.ValidateCooldownDays(365))
	assert.ErrorIs(t, application.ValidateCooldownDays(0), domain.ErrInvalidCooldownDays)
	assert.ErrorIs(t, application.ValidateCooldownDays(366), domain.ErrInvalidCooldownDays)
}
