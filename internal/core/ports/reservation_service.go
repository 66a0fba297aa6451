package ports

import (
	"context"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// ReservationInput carries the user-submitted fields for create and update.
// Owner and id never travel through it; they come from the authenticated
// context and the route parameter respectively.
type ReservationInput struct {
	Name   string
	Date   string // 2006-01-02
	Time   string // 15:04
	Guests int
	Notes  string
}

// ReservationService defines the ownership-scoped use cases. Every call
// takes the acting user's id explicitly; there is no ambient current-user.
type ReservationService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Reservation, error)
	Create(ctx context.Context, ownerID string, input ReservationInput) (*domain.Reservation, error)
	GetOwned(ctx context.Context, ownerID string, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, ownerID string, id int64, input ReservationInput) (*domain.Reservation, error)
	Delete(ctx context.Context, ownerID string, id int64) error
	// ListAll is the admin reporting view: read-only, unscoped, filtered.
	ListAll(ctx context.Context, filter AdminListFilter) ([]*domain.Reservation, int64, error)
}
