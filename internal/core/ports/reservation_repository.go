package ports

import (
	"context"
	"time"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// AdminListFilter carries the query parameters for the admin reporting view:
// exact reservation date, created_at range, and free-text search over name
// and owner.
type AdminListFilter struct {
	Date        string    // optional: exact reservation date (2006-01-02)
	CreatedFrom time.Time // optional: created_at >= CreatedFrom
	CreatedTo   time.Time // optional: created_at <= CreatedTo
	Search      string    // optional: partial match on name or owner_id
	Page        int       // 1-based
	Limit       int       // max rows per page (capped at 100 by the handler)
}

// ReservationRepository defines persistence operations for reservations.
// Every owner-scoped method filters by ownerID in the store query itself, so
// a missing record and a foreign record are indistinguishable to callers.
type ReservationRepository interface {
	// NextID allocates the next reservation identifier from the sequence.
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, r *domain.Reservation) error
	// FindByID retrieves a reservation by id, scoped to ownerID.
	FindByID(ctx context.Context, id int64, ownerID string) (*domain.Reservation, error)
	// ListByOwner returns the owner's reservations ordered by created_at
	// ascending, id as tiebreaker.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Reservation, error)
	// Update persists the mutable fields of r for the given owner.
	// Returns domain.ErrReservationNotFound when no owned document matches.
	Update(ctx context.Context, r *domain.Reservation) error
	// Delete removes the owned reservation. Returns
	// domain.ErrReservationNotFound when nothing was removed, so a repeated
	// delete of the same id fails rather than silently succeeding.
	Delete(ctx context.Context, id int64, ownerID string) error
	// ListAll returns a page of reservations matching filter and the total
	// count. Used only by the read-only admin view.
	ListAll(ctx context.Context, filter AdminListFilter) ([]*domain.Reservation, int64, error)
}
