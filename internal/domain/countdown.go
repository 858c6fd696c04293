package domain

import (
	"fmt"
	"time"
)

const expiredCountdownLabel = "00:00:00:00"

// Countdown is the remaining time until a target instant, decomposed without
// calendar awareness: whole days first, then hours/minutes/seconds modulo
// their radix.
type Countdown struct {
	Days      int
	Hours     int
	Minutes   int
	Seconds   int
	IsExpired bool
	Formatted string
}

// ComputeCountdown projects a nullable target instant to the remaining time
// at now. A nil target or a target at/before now yields the expired zero
// countdown.
func ComputeCountdown(target *time.Time, now time.Time) Countdown {
	if target == nil {
		return Countdown{IsExpired: true, Formatted: expiredCountdownLabel}
	}

	remaining := target.Sub(now)
	if remaining <= 0 {
		return Countdown{IsExpired: true, Formatted: expiredCountdownLabel}
	}

	total := int64(remaining / time.Second)
	c := Countdown{
		Days:    int(total / 86_400),
		Hours:   int(total / 3_600 % 24),
		Minutes: int(total / 60 % 60),
		Seconds: int(total % 60),
	}
	// The day field widens past two digits instead of truncating.
	c.Formatted = fmt.Sprintf("%02d:%02d:%02d:%02d", c.Days, c.Hours, c.Minutes, c.Seconds)

	return c
}
