package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ashwini/config"
	opRepo "ashwini/database/repository/op"
	"ashwini/models"
	"ashwini/utils"
)

// InvalidTransitionError reports a status move outside the transition table.
type InvalidTransitionError struct {
	From models.Status
	To   models.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %s to %s", e.From, e.To)
}

// QueueService governs the OP queue: status transitions, the consulting
// slot and next-in-queue derivation.
type QueueService interface {
	SetStatus(ctx context.Context, id string, status models.Status) (*models.OPBooking, error)
	// CurrentConsulting returns the booking holding the consulting slot,
	// or nil when nobody is with the doctor.
	CurrentConsulting(ctx context.Context) (*models.OPBooking, error)
	// NextInQueue returns the pending booking that should be called next,
	// or nil when no pending booking exists.
	NextInQueue(ctx context.Context) (*models.OPBooking, error)
	// ListToday returns today's bookings in FIFO (creation) order.
	ListToday(ctx context.Context) ([]models.OPBooking, error)
}

// DefaultQueueService is the production implementation.
type DefaultQueueService struct {
	Repo opRepo.OPRepository
}

// SetStatus applies an admin-triggered status transition.
//
// Moving a booking into Doctor first forces every other Doctor booking back
// to Pending, keeping the consulting slot single-occupant, then assigns the
// consulting doctor's name. Moving a booking to Completed afterwards
// promotes the oldest Pending booking into Doctor, so the queue chains
// forward without the admin calling the next patient.
func (s *DefaultQueueService) SetStatus(ctx context.Context, id string, status models.Status) (*models.OPBooking, error) {
	logger := utils.GetLogger()

	if !status.Valid() {
		return nil, &InvalidTransitionError{To: status}
	}

	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransition(status) {
		return nil, &InvalidTransitionError{From: current.Status, To: status}
	}

	patch := opRepo.Patch{Status: &status, Time: displayNow()}

	if status == models.StatusDoctor {
		// Two-step write: demote the previous holder, then promote the
		// target. A crash in between is healed on the next read, which
		// treats the earliest Doctor booking as canonical.
		if _, err := s.Repo.ReassignStatus(ctx, models.StatusDoctor, models.StatusPending, id); err != nil {
			return nil, fmt.Errorf("failed to clear consulting slot: %w", err)
		}
		doctor := config.AppConfig.ConsultingDoctor
		patch.DoctorName = &doctor
	}

	updated, err := s.Repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if status == models.StatusCompleted {
		if next, err := s.advanceQueue(ctx); err != nil {
			logger.Warn("queue auto-advance failed", zap.Error(err))
		} else if next != nil {
			logger.Info("auto moved next patient to doctor",
				zap.String("opNumber", next.OPNumber),
				zap.String("patient", next.PatientName),
			)
		}
	}

	return updated, nil
}

// advanceQueue promotes the oldest Pending booking into the consulting slot.
func (s *DefaultQueueService) advanceQueue(ctx context.Context) (*models.OPBooking, error) {
	next, err := s.Repo.EarliestByStatus(ctx, models.StatusPending)
	if errors.Is(err, opRepo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	doctor := models.StatusDoctor
	doctorName := config.AppConfig.ConsultingDoctor
	return s.Repo.UpdateByID(ctx, next.ID, opRepo.Patch{
		Status:     &doctor,
		DoctorName: &doctorName,
		Time:       displayNow(),
	})
}

// CurrentConsulting returns the booking with status Doctor. The invariant
// allows at most one, but the earliest-created wins if a crashed two-step
// write ever left more than one behind.
func (s *DefaultQueueService) CurrentConsulting(ctx context.Context) (*models.OPBooking, error) {
	op, err := s.Repo.EarliestByStatus(ctx, models.StatusDoctor)
	if errors.Is(err, opRepo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return op, nil
}

// NextInQueue derives which pending patient should be called next.
//
// With nobody consulting, the earliest-created Pending booking is next.
// Otherwise today's bookings are treated as a ring in display order (time
// desc, creation desc): scan forward from the consulting booking for a
// Pending entry, wrapping to the entries before it when none follows.
func (s *DefaultQueueService) NextInQueue(ctx context.Context) (*models.OPBooking, error) {
	today := time.Now().Format(models.DateLayout)
	ordered, err := s.Repo.ListByDate(ctx, today, true)
	if err != nil {
		return nil, err
	}

	currentIdx := -1
	for i, op := range ordered {
		if op.Status == models.StatusDoctor {
			currentIdx = i
			break
		}
	}

	if currentIdx < 0 {
		// Queue has not started; the first pending patient is next.
		op, err := s.Repo.EarliestByStatus(ctx, models.StatusPending)
		if errors.Is(err, opRepo.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return op, nil
	}

	for i := currentIdx + 1; i < len(ordered); i++ {
		if ordered[i].Status == models.StatusPending {
			op := ordered[i]
			return &op, nil
		}
	}
	for i := 0; i < currentIdx; i++ {
		if ordered[i].Status == models.StatusPending {
			op := ordered[i]
			return &op, nil
		}
	}
	return nil, nil
}

// ListToday returns today's bookings, first-booked first.
func (s *DefaultQueueService) ListToday(ctx context.Context) ([]models.OPBooking, error) {
	today := time.Now().Format(models.DateLayout)
	return s.Repo.ListByDate(ctx, today, false)
}

func displayNow() *string {
	t := time.Now().Format(models.TimeLayout)
	return &t
}
