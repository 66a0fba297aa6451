package domain

import "time"

// ActivityAction identifies the kind of write recorded in the activity trail.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
)

// ActivityEvent is one append-only audit record for a reservation write.
type ActivityEvent struct {
	ReservationID int64          `bson:"reservation_id"`
	OwnerID       string         `bson:"owner_id"`
	Action        ActivityAction `bson:"action"`
	Timestamp     time.Time      `bson:"timestamp"`
}
