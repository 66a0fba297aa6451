package ports

import (
	"context"
	"time"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// ActivityInput is the DTO handed from the write path to the activity queue.
type ActivityInput struct {
	ReservationID int64
	OwnerID       string
	Action        domain.ActivityAction
	Timestamp     time.Time
}

// ActivityRecorder enqueues activity events for asynchronous persistence.
// Recording never fails the originating request; errors stay in the worker.
type ActivityRecorder interface {
	Record(event ActivityInput)
}

// ActivityService processes queued activity events.
type ActivityService interface {
	Process(ctx context.Context, event ActivityInput) error
}
