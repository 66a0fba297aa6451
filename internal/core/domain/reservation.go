package domain

import (
	"errors"
	"time"
)

// DateLayout and TimeLayout are the wire formats for the reservation's
// calendar date and time-of-day fields (ISO-8601 date / 24h clock).
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrReservationNotFound = errors.New("reservation not found")

// ValidationError reports a single invalid reservation field. It is
// recoverable: the caller re-presents the input with the reason attached.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// NewValidationError builds a field-scoped validation failure.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Reservation is the core aggregate. OwnerID is set once at creation from
// the authenticated user and never reassigned; every read and write is
// filtered by it.
type Reservation struct {
	ID        int64     `json:"id" bson:"_id"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	Name      string    `json:"name" bson:"name"`
	Date      string    `json:"date" bson:"date"`
	Time      string    `json:"time" bson:"time"`
	Guests    int       `json:"guests" bson:"guests"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
