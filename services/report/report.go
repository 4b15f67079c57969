package report

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	opRepo "ashwini/database/repository/op"
	"ashwini/models"
	"ashwini/services/notification"
	"ashwini/services/queue"
	"ashwini/utils"
)

// ReportService serves the report-collection desk: bookings whose
// consultation is done move through Report into Ready, and the patient is
// told by SMS when the report can be collected.
type ReportService interface {
	List(ctx context.Context) ([]models.ReportEntry, error)
	UpdateStatus(ctx context.Context, opNumber string, status models.Status) error
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Repo opRepo.OPRepository
	SMS  notification.SMSSender
}

// List returns every booking currently in the report pipeline.
func (s *DefaultReportService) List(ctx context.Context) ([]models.ReportEntry, error) {
	ops, err := s.Repo.ListByStatuses(ctx, models.StatusReport, models.StatusReady)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report bookings: %w", err)
	}

	entries := make([]models.ReportEntry, 0, len(ops))
	for _, op := range ops {
		entries = append(entries, models.ReportEntry{
			OPNumber: op.OPNumber,
			Name:     op.PatientName,
			Mobile:   op.PatientNumber,
			Status:   op.Status,
		})
	}
	return entries, nil
}

// UpdateStatus moves a report-desk booking, addressed by today's OP number,
// to the given status. Reaching Ready notifies the patient.
func (s *DefaultReportService) UpdateStatus(ctx context.Context, opNumber string, status models.Status) error {
	if !status.Valid() {
		return &queue.InvalidTransitionError{To: status}
	}

	today := time.Now().Format(models.DateLayout)
	op, err := s.Repo.GetByOPNumber(ctx, today, opNumber)
	if err != nil {
		return err
	}
	if !op.Status.CanTransition(status) {
		return &queue.InvalidTransitionError{From: op.Status, To: status}
	}

	displayTime := time.Now().Format(models.TimeLayout)
	if _, err := s.Repo.UpdateByID(ctx, op.ID, opRepo.Patch{Status: &status, Time: &displayTime}); err != nil {
		return err
	}

	if status == models.StatusReady && op.PatientNumber != "" {
		to := notification.NormalizeNumber(op.PatientNumber)
		if err := s.SMS.SendSMS(ctx, to, notification.ReportReadyBody(op.PatientName)); err != nil {
			return err
		}
		utils.GetLogger().Info("report ready sms sent",
			zap.String("opNumber", opNumber),
			zap.String("patient", op.PatientName),
		)
	}
	return nil
}
