package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opRepo "ashwini/database/repository/op"
	"ashwini/models"
)

func seed(t *testing.T, repo opRepo.OPRepository, date string, status models.Status) {
	t.Helper()
	_, err := repo.Create(context.Background(), models.OPBooking{
		PatientName:   "Patient",
		PatientNumber: "9000000000",
		Age:           30,
		Date:          date,
		Status:        status,
	})
	require.NoError(t, err)
}

func TestCountsBuckets(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	today := time.Now().Format(models.DateLayout)

	for _, status := range []models.Status{
		models.StatusPending,
		models.StatusDoctor,
		models.StatusReport,
		models.StatusCompleted,
		models.StatusCompleted,
	} {
		seed(t, repo, today, status)
	}

	svc := &DefaultDashboardService{Repo: repo}
	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, counts.OPCount)
	assert.EqualValues(t, 1, counts.ReportCount)
	assert.EqualValues(t, 2, counts.CompletedCount)
	assert.EqualValues(t, 5, counts.TotalCount)
}

func TestCountsScopedToToday(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	today := time.Now().Format(models.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(models.DateLayout)

	seed(t, repo, today, models.StatusPending)
	seed(t, repo, yesterday, models.StatusPending)
	seed(t, repo, yesterday, models.StatusCompleted)

	svc := &DefaultDashboardService{Repo: repo}
	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 1, counts.OPCount)
	assert.EqualValues(t, 0, counts.CompletedCount)
	assert.EqualValues(t, 1, counts.TotalCount)
}

func TestCountsEmptyDay(t *testing.T) {
	svc := &DefaultDashboardService{Repo: opRepo.NewMemoryOPRepo()}

	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, counts.TotalCount)
	assert.EqualValues(t, 0, counts.OPCount)
}
