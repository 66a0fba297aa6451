package service

import (
	"strings"
	"time"

	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

// validateInput checks the user-submitted reservation fields: structure
// (name present, date and time parse, guests at least 1) and the business
// rule that the date is not in the past relative to today. Pure over its
// arguments; the caller supplies "today" so the check is deterministic.
// The same function runs on both the create and the update path.
func validateInput(in ports.ReservationInput, today time.Time) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.NewValidationError("name", "name is required")
	}

	if in.Date == "" {
		return domain.NewValidationError("date", "date is required")
	}
	date, err := time.Parse(domain.DateLayout, in.Date)
	if err != nil {
		return domain.NewValidationError("date", "date must be a valid calendar date (YYYY-MM-DD)")
	}
	if date.Before(truncateToDate(today)) {
		return domain.NewValidationError("date", "date is in the past")
	}

	if in.Time == "" {
		return domain.NewValidationError("time", "time is required")
	}
	if _, err := time.Parse(domain.TimeLayout, in.Time); err != nil {
		return domain.NewValidationError("time", "time must be a valid time of day (HH:MM)")
	}

	if in.Guests < 1 {
		return domain.NewValidationError("guests", "guests must be at least 1")
	}

	return nil
}

// truncateToDate drops the time-of-day so date comparisons work on whole
// calendar days in the server's location.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
