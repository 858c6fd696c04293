package domain

import "errors"

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidCooldownDays   = errors.New("cooldown days must be between 1 and 365")
	ErrCooldownStateMismatch = errors.New("account status does not match countdown timestamps")
)
