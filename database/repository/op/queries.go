package opRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ashwini/models"
)

// mongoReturnAfter builds FindOneAndUpdate options returning the post-update
// document.
func mongoReturnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// LatestByDate returns the most recently created booking of the given day.
func (r *mongoOPRepo) LatestByDate(ctx context.Context, date string) (*models.OPBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var op models.OPBooking
	err := r.coll.FindOne(ctx, bson.M{"date": date}, opts).Decode(&op)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest booking for %s: %w", date, err)
	}
	return &op, nil
}

// ListByDate returns a day's bookings. Oldest first by default; newestFirst
// mirrors the queue display ordering (time desc, created_at desc).
func (r *mongoOPRepo) ListByDate(ctx context.Context, date string, newestFirst bool) ([]models.OPBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sort := bson.D{{Key: "created_at", Value: 1}}
	if newestFirst {
		sort = bson.D{{Key: "time", Value: -1}, {Key: "created_at", Value: -1}}
	}
	cursor, err := r.coll.Find(ctx, bson.M{"date": date}, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var ops []models.OPBooking
	if err := cursor.All(ctx, &ops); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return ops, nil
}

// ListByStatuses returns bookings in any of the given statuses, oldest first.
func (r *mongoOPRepo) ListByStatuses(ctx context.Context, statuses ...models.Status) ([]models.OPBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"status": bson.M{"$in": statuses}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings by status: %w", err)
	}
	defer cursor.Close(ctx)

	var ops []models.OPBooking
	if err := cursor.All(ctx, &ops); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return ops, nil
}

// EarliestByStatus returns the oldest booking holding status.
func (r *mongoOPRepo) EarliestByStatus(ctx context.Context, status models.Status) (*models.OPBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})
	var op models.OPBooking
	err := r.coll.FindOne(ctx, bson.M{"status": status}, opts).Decode(&op)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch earliest %s booking: %w", status, err)
	}
	return &op, nil
}

// CountByDate counts a day's bookings, optionally restricted to statuses.
func (r *mongoOPRepo) CountByDate(ctx context.Context, date string, statuses ...models.Status) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for %s: %w", date, err)
	}
	return count, nil
}
