package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ashwini/config"
	"ashwini/models"
	"ashwini/services/notification"
	"ashwini/utils"
)

// Book validates the request, allocates the next OP number for today,
// persists the booking and sends the confirmation SMS. The SMS is sent
// before the response: if it fails the booking record already exists but
// the call is reported as failed.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookOPRequest) (*models.BookOPResponse, error) {
	if req.Name == "" {
		return nil, newValidationError("name")
	}
	if req.Number == "" {
		return nil, newValidationError("number")
	}
	if req.Age <= 0 {
		return nil, newValidationError("age")
	}

	now := time.Now()
	date := now.Format(models.DateLayout)

	opNumber, err := s.Sequencer.Next(ctx, date)
	if err != nil {
		return nil, err
	}

	displayTime := req.Time
	if displayTime == "" {
		displayTime = now.Format(models.TimeLayout)
	}
	doctorName := req.DoctorName
	if doctorName == "" {
		doctorName = models.DefaultDoctorName
	}
	department := req.Department
	if department == "" {
		department = models.DefaultDepartment
	}

	op := models.OPBooking{
		OPNumber:      opNumber,
		PatientName:   req.Name,
		PatientNumber: req.Number,
		Age:           req.Age,
		DoctorName:    doctorName,
		Department:    department,
		Time:          displayTime,
		Date:          date,
		Status:        models.StatusPending,
	}
	if _, err := s.Repo.Create(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to persist booking %s: %w", opNumber, err)
	}

	eta := config.AppConfig.BookingETA
	to := notification.NormalizeNumber(req.Number)
	body := notification.BookingConfirmationBody(opNumber, eta)
	if err := s.SMS.SendSMS(ctx, to, body); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("op booked",
		zap.String("opNumber", opNumber),
		zap.String("patient", req.Name),
	)
	return &models.BookOPResponse{OPNumber: opNumber, ETA: eta}, nil
}

// Add persists a record supplied by the admin desk, filling defaults for
// anything missing. Used for walk-ins registered without the patient form.
func (s *DefaultBookingService) Add(ctx context.Context, op models.OPBooking) (string, error) {
	if op.PatientName == "" {
		return "", newValidationError("patientName")
	}
	if op.PatientNumber == "" {
		return "", newValidationError("patientNumber")
	}

	now := time.Now()
	if op.Date == "" {
		op.Date = now.Format(models.DateLayout)
	}
	if op.Time == "" {
		op.Time = now.Format(models.TimeLayout)
	}
	if op.OPNumber == "" {
		opNumber, err := s.Sequencer.Next(ctx, op.Date)
		if err != nil {
			return "", err
		}
		op.OPNumber = opNumber
	}
	if op.Status == "" {
		op.Status = models.StatusPending
	}
	if op.DoctorName == "" {
		op.DoctorName = models.DefaultDoctorName
	}
	if op.Department == "" {
		op.Department = models.DefaultDepartment
	}

	id, err := s.Repo.Create(ctx, op)
	if err != nil {
		return "", fmt.Errorf("failed to persist booking %s: %w", op.OPNumber, err)
	}
	return id, nil
}
