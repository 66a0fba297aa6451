package ports

import (
	"context"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// ActivityRepository persists the append-only reservation activity trail.
type ActivityRepository interface {
	InsertEvent(ctx context.Context, event *domain.ActivityEvent) error
	// ListByReservation returns the recorded events for one reservation,
	// oldest first.
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.ActivityEvent, error)
}
