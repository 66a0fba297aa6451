package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

const (
	collectionReservations = "reservations"
	sequenceReservations   = "reservations"
)

type ReservationRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{db: db, col: db.Collection(collectionReservations)}
}

// NextID allocates the next reservation id from the counters sequence.
func (r *ReservationRepository) NextID(ctx context.Context) (int64, error) {
	return nextSequence(ctx, r.db, sequenceReservations)
}

// Create inserts a new reservation document.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, res)
	return err
}

// FindByID retrieves a reservation by id, always filtered by owner so a
// foreign record is indistinguishable from a missing one.
func (r *ReservationRepository) FindByID(ctx context.Context, id int64, ownerID string) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var res domain.Reservation
	err := r.col.FindOne(ctx, bson.M{"_id": id, "owner_id": ownerID}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

// ListByOwner returns the owner's reservations, created_at ascending with id
// as tiebreaker so the order is deterministic.
func (r *ReservationRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reservations := []*domain.Reservation{}
	if err := cur.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// Update sets the mutable fields on an owned reservation. Owner, id, and
// created_at are not part of the update document.
func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": res.ID, "owner_id": res.OwnerID},
		bson.M{"$set": bson.M{
			"name":   res.Name,
			"date":   res.Date,
			"time":   res.Time,
			"guests": res.Guests,
			"notes":  res.Notes,
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

// Delete removes an owned reservation in a single filtered call, making the
// ownership check and the removal atomic. A zero delete count means the id
// is gone (or never was the caller's) and maps to not-found.
func (r *ReservationRepository) Delete(ctx context.Context, id int64, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

// ListAll returns a page of reservations matching the admin filter plus the
// total count.
func (r *ReservationRepository) ListAll(ctx context.Context, filter ports.AdminListFilter) ([]*domain.Reservation, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	createdRange := bson.M{}
	if !filter.CreatedFrom.IsZero() {
		createdRange["$gte"] = filter.CreatedFrom
	}
	if !filter.CreatedTo.IsZero() {
		createdRange["$lte"] = filter.CreatedTo
	}
	if len(createdRange) > 0 {
		query["created_at"] = createdRange
	}
	if filter.Search != "" {
		pattern := primitiveRegex(filter.Search)
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"owner_id": pattern},
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	reservations := []*domain.Reservation{}
	if err := cur.All(ctx, &reservations); err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// EnsureIndexes creates the indexes the owner-scoped queries rely on.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// primitiveRegex builds a case-insensitive partial-match filter. The search
// term is free text from a query parameter, so metacharacters are escaped;
// "John (VIP)" matches literally instead of erroring as a bad pattern.
func primitiveRegex(search string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
}
