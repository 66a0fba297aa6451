package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists queued
// reservation write events to the audit trail.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single activity event. Failures are reported to the
// dispatcher worker; they never reach the request that produced the event.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	event := &domain.ActivityEvent{
		ReservationID: in.ReservationID,
		OwnerID:       in.OwnerID,
		Action:        in.Action,
		Timestamp:     in.Timestamp,
	}

	if err := s.repo.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	s.log.Debug().
		Int64("reservation_id", in.ReservationID).
		Str("action", string(in.Action)).
		Msg("activity recorded")

	return nil
}
