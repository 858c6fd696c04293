package domain

import "time"

type AccountID string

type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusCooldown AccountStatus = "cooldown"
)

// Cooldown durations are whole days within [MinCooldownDays, MaxCooldownDays].
const (
	MinCooldownDays = 1
	MaxCooldownDays = 365
)

// Account is an email identity with a cooldown lifecycle. The countdown
// timestamps pair with the status: both nil while active, both set while
// cooling down. No other combination is valid.
type Account struct {
	ID               AccountID
	Email            string
	Status           AccountStatus
	CountdownStartAt *time.Time
	CountdownEndAt   *time.Time
	CreatedAt        time.Time
}

func NewAccount(id AccountID, email string, createdAt time.Time) Account {
	return Account{
		ID:        id,
		Email:     email,
		Status:    StatusActive,
		CreatedAt: createdAt,
	}
}

func ValidCooldownDays(days int) bool {
	return days >= MinCooldownDays && days <= MaxCooldownDays
}

// StartCooldown enters (or restarts) the cooldown state. Restarting replaces
// the timers, it never accumulates.
func (a Account) StartCooldown(now time.Time, days int) (Account, error) {
	if !ValidCooldownDays(days) {
		return a, ErrInvalidCooldownDays
	}

	end := now.Add(time.Duration(days) * 24 * time.Hour)
	a.Status = StatusCooldown
	a.CountdownStartAt = &now
	a.CountdownEndAt = &end

	return a, nil
}

// ResetCooldown returns the account to active and clears both timers. Safe to
// call on an already-active account.
func (a Account) ResetCooldown() Account {
	a.Status = StatusActive
	a.CountdownStartAt = nil
	a.CountdownEndAt = nil

	return a
}

// CooldownExpired reports whether a cooling-down account has reached its end
// instant and should revert to active.
func (a Account) CooldownExpired(now time.Time) bool {
	if a.Status != StatusCooldown || a.CountdownEndAt == nil {
		return false
	}

	return !a.CountdownEndAt.After(now)
}

// Validate checks the status/timestamp pairing invariant.
func (a Account) Validate() error {
	switch a.Status {
	case StatusActive:
		if a.CountdownStartAt != nil || a.CountdownEndAt != nil {
			return ErrCooldownStateMismatch
		}
	case StatusCooldown:
		if a.CountdownStartAt == nil || a.CountdownEndAt == nil {
			return ErrCooldownStateMismatch
		}
	default:
		return ErrCooldownStateMismatch
	}

	return nil
}
