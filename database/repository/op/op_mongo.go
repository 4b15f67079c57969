package opRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ashwini/config"
	"ashwini/database"
	"ashwini/models"
	"ashwini/utils"
)

type mongoOPRepo struct {
	coll *mongo.Collection
}

// NewMongoOPRepo returns an OPRepository backed by the shared Mongo client.
func NewMongoOPRepo() OPRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoOPRepo{
		coll: db.Collection("op_bookings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("op repo: failed to ensure indexes: %v", err)
	}
	return repo
}

// Create inserts a new booking and returns its ID.
func (r *mongoOPRepo) Create(ctx context.Context, op models.OPBooking) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	now := time.Now()
	if op.CreatedAt.IsZero() {
		op.CreatedAt = now
	}
	op.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, op); err != nil {
		return "", err
	}
	return op.ID, nil
}

// GetByID returns a booking by its ID.
func (r *mongoOPRepo) GetByID(ctx context.Context, id string) (*models.OPBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var op models.OPBooking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&op)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// GetByOPNumber returns a booking by its per-day OP number.
func (r *mongoOPRepo) GetByOPNumber(ctx context.Context, date, opNumber string) (*models.OPBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var op models.OPBooking
	err := r.coll.FindOne(ctx, bson.M{"date": date, "op_number": opNumber}).Decode(&op)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// UpdateByID applies a status patch and returns the updated booking.
func (r *mongoOPRepo) UpdateByID(ctx context.Context, id string, patch Patch) (*models.OPBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.DoctorName != nil {
		set["doctor_name"] = *patch.DoctorName
	}
	if patch.Time != nil {
		set["time"] = *patch.Time
	}

	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		mongoReturnAfter(),
	)
	var op models.OPBooking
	err := res.Decode(&op)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// ReassignStatus moves every booking in from to to, except exceptID.
func (r *mongoOPRepo) ReassignStatus(ctx context.Context, from, to models.Status, exceptID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"status": from}
	if exceptID != "" {
		filter["id"] = bson.M{"$ne": exceptID}
	}
	res, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{
		"status":     to,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
