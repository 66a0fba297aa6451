package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

const collectionActivity = "reservation_activity"

// ActivityRepository persists the append-only activity trail.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

func (r *ActivityRepository) InsertEvent(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, event)
	return err
}

// ListByReservation returns the events for one reservation, oldest first.
func (r *ActivityRepository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"reservation_id": reservationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []*domain.ActivityEvent{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
