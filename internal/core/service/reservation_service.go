package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

// ReservationService implements the ownership-scoped CRUD use cases. The
// acting user's id is an explicit parameter on every call and is pushed down
// into each store query, so ownership mismatches surface as not-found.
type ReservationService struct {
	repo     ports.ReservationRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger

	// now is the clock the validation layer derives "today" from.
	// Overridable in tests.
	now func() time.Time
}

func NewReservationService(repo ports.ReservationRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *ReservationService {
	return &ReservationService{
		repo:     repo,
		activity: activity,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns the caller's reservations, created_at ascending.
func (s *ReservationService) List(ctx context.Context, ownerID string) ([]*domain.Reservation, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create validates input and persists a new reservation owned by ownerID.
// On validation failure nothing is written.
func (s *ReservationService) Create(ctx context.Context, ownerID string, input ports.ReservationInput) (*domain.Reservation, error) {
	if err := validateInput(input, s.now()); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to allocate reservation id")
		return nil, err
	}

	reservation := &domain.Reservation{
		ID:        id,
		OwnerID:   ownerID,
		Name:      input.Name,
		Date:      input.Date,
		Time:      input.Time,
		Guests:    input.Guests,
		Notes:     input.Notes,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		s.logger.Error().Err(err).Msg("failed to create reservation")
		return nil, err
	}

	s.record(reservation.ID, ownerID, domain.ActivityCreated)
	s.logger.Info().Int64("reservation_id", reservation.ID).Str("owner_id", ownerID).Msg("reservation created")

	return reservation, nil
}

// GetOwned fetches a reservation by id scoped to ownerID. A missing id and a
// foreign owner both yield domain.ErrReservationNotFound.
func (s *ReservationService) GetOwned(ctx context.Context, ownerID string, id int64) (*domain.Reservation, error) {
	return s.repo.FindByID(ctx, id, ownerID)
}

// Update merges validated fields into an owned reservation. Owner, id and
// created_at are never altered.
func (s *ReservationService) Update(ctx context.Context, ownerID string, id int64, input ports.ReservationInput) (*domain.Reservation, error) {
	existing, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := validateInput(input, s.now()); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Date = input.Date
	existing.Time = input.Time
	existing.Guests = input.Guests
	existing.Notes = input.Notes

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Int64("reservation_id", id).Msg("failed to update reservation")
		return nil, err
	}

	s.record(id, ownerID, domain.ActivityUpdated)
	s.logger.Info().Int64("reservation_id", id).Str("owner_id", ownerID).Msg("reservation updated")

	return existing, nil
}

// Delete removes an owned reservation. The repository filters on both id and
// owner in one call, so the existence check and the removal are atomic; a
// second delete of the same id fails with domain.ErrReservationNotFound.
func (s *ReservationService) Delete(ctx context.Context, ownerID string, id int64) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.record(id, ownerID, domain.ActivityDeleted)
	s.logger.Info().Int64("reservation_id", id).Str("owner_id", ownerID).Msg("reservation deleted")

	return nil
}

// ListAll serves the admin reporting view. Pagination defaults match the
// user-facing conventions: page 1, limit 20, capped at 100.
func (s *ReservationService) ListAll(ctx context.Context, filter ports.AdminListFilter) ([]*domain.Reservation, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.ListAll(ctx, filter)
}

func (s *ReservationService) record(reservationID int64, ownerID string, action domain.ActivityAction) {
	if s.activity == nil {
		return
	}
	s.activity.Record(ports.ActivityInput{
		ReservationID: reservationID,
		OwnerID:       ownerID,
		Action:        action,
		Timestamp:     s.now().UTC(),
	})
}
