package opRepo

import (
	"context"
	"errors"

	"ashwini/models"
)

// ErrNotFound is returned when an id or OP number resolves to no booking.
var ErrNotFound = errors.New("op booking not found")

// Patch carries the mutable fields of a status update. Nil fields are left
// untouched. Everything else on a booking is immutable after creation.
type Patch struct {
	Status     *models.Status
	DoctorName *string
	Time       *string
}

// OPRepository is the persistence surface for outpatient bookings. All
// "today" queries filter on the date partition string the booking was
// created with.
type OPRepository interface {
	Create(ctx context.Context, op models.OPBooking) (string, error)
	GetByID(ctx context.Context, id string) (*models.OPBooking, error)
	GetByOPNumber(ctx context.Context, date, opNumber string) (*models.OPBooking, error)

	// LatestByDate returns the most recently created booking of the given
	// day, or ErrNotFound when the day has none.
	LatestByDate(ctx context.Context, date string) (*models.OPBooking, error)
	// ListByDate returns a day's bookings, oldest first, or newest first
	// when newestFirst is set (time desc, then created_at desc).
	ListByDate(ctx context.Context, date string, newestFirst bool) ([]models.OPBooking, error)
	ListByStatuses(ctx context.Context, statuses ...models.Status) ([]models.OPBooking, error)
	// EarliestByStatus returns the oldest booking holding status, by
	// creation order.
	EarliestByStatus(ctx context.Context, status models.Status) (*models.OPBooking, error)

	UpdateByID(ctx context.Context, id string, patch Patch) (*models.OPBooking, error)
	// ReassignStatus rewrites every booking in status from to status to,
	// skipping exceptID when non-empty. Returns the number of bookings
	// touched.
	ReassignStatus(ctx context.Context, from, to models.Status, exceptID string) (int64, error)

	CountByDate(ctx context.Context, date string, statuses ...models.Status) (int64, error)
}
