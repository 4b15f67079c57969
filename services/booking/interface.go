package booking

import (
	"context"

	opRepo "ashwini/database/repository/op"
	"ashwini/models"
	"ashwini/services/notification"
)

// BookingService creates outpatient booking records.
type BookingService interface {
	// Book validates the request, allocates the day's next OP number,
	// persists a Pending booking and sends the confirmation SMS.
	Book(ctx context.Context, req models.BookOPRequest) (*models.BookOPResponse, error)
	// Add persists a pre-filled record from the admin desk, filling in any
	// missing defaults. No SMS is sent.
	Add(ctx context.Context, op models.OPBooking) (string, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      opRepo.OPRepository
	Sequencer *Sequencer
	SMS       notification.SMSSender
}
