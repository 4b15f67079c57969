package queue

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ashwini/config"
	opRepo "ashwini/database/repository/op"
	"ashwini/models"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	os.Exit(m.Run())
}

// seed creates a booking for today and returns its id. Display times are
// spaced a millisecond apart so creation order is unambiguous.
func seed(t *testing.T, repo opRepo.OPRepository, name, displayTime string, status models.Status) string {
	t.Helper()
	id, err := repo.Create(context.Background(), models.OPBooking{
		PatientName:   name,
		PatientNumber: "9000000000",
		Age:           35,
		DoctorName:    models.DefaultDoctorName,
		Department:    models.DefaultDepartment,
		Time:          displayTime,
		Date:          time.Now().Format(models.DateLayout),
		Status:        status,
	})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	return id
}

func TestSetStatusNotFound(t *testing.T) {
	svc := &DefaultQueueService{Repo: opRepo.NewMemoryOPRepo()}

	_, err := svc.SetStatus(context.Background(), "no-such-id", models.StatusDoctor)
	assert.ErrorIs(t, err, opRepo.ErrNotFound)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	id := seed(t, repo, "A", "09:00", models.StatusPending)
	svc := &DefaultQueueService{Repo: repo}

	_, err := svc.SetStatus(context.Background(), id, models.Status("1st Done"))
	var tErr *InvalidTransitionError
	assert.ErrorAs(t, err, &tErr)
}

func TestSetStatusRejectsTransitionOutsideTable(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	id := seed(t, repo, "A", "09:00", models.StatusCompleted)
	svc := &DefaultQueueService{Repo: repo}

	_, err := svc.SetStatus(context.Background(), id, models.StatusDoctor)
	var tErr *InvalidTransitionError
	require.ErrorAs(t, err, &tErr)

	// Rejected transitions leave the record untouched.
	op, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, op.Status)
}

func TestSetStatusDoctorTakesConsultingSlot(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	a := seed(t, repo, "A", "09:00", models.StatusDoctor)
	b := seed(t, repo, "B", "09:05", models.StatusPending)
	svc := &DefaultQueueService{Repo: repo}

	updated, err := svc.SetStatus(context.Background(), b, models.StatusDoctor)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDoctor, updated.Status)
	assert.Equal(t, config.AppConfig.ConsultingDoctor, updated.DoctorName)

	// The previous holder went back to Pending: at most one Doctor.
	prev, err := repo.GetByID(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, prev.Status)

	doctors, err := repo.ListByStatuses(context.Background(), models.StatusDoctor)
	require.NoError(t, err)
	assert.Len(t, doctors, 1)
}

func TestSetStatusCompletedAutoAdvances(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	a := seed(t, repo, "A", "09:00", models.StatusDoctor)
	b := seed(t, repo, "B", "09:05", models.StatusPending)
	c := seed(t, repo, "C", "09:10", models.StatusPending)
	svc := &DefaultQueueService{Repo: repo}

	updated, err := svc.SetStatus(context.Background(), a, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	// The oldest Pending booking took the consulting slot.
	next, err := repo.GetByID(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDoctor, next.Status)
	assert.Equal(t, config.AppConfig.ConsultingDoctor, next.DoctorName)

	still, err := repo.GetByID(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, still.Status)
}

func TestSetStatusCompletedWithEmptyQueue(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	a := seed(t, repo, "A", "09:00", models.StatusDoctor)
	svc := &DefaultQueueService{Repo: repo}

	updated, err := svc.SetStatus(context.Background(), a, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	current, err := svc.CurrentConsulting(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

// The full walk-through from the admin desk: three patients book, the first
// is called in, finishes, and the queue chains forward on its own.
func TestQueueChainsForward(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	a := seed(t, repo, "A", "09:00", models.StatusPending)
	b := seed(t, repo, "B", "09:05", models.StatusPending)
	c := seed(t, repo, "C", "09:10", models.StatusPending)
	svc := &DefaultQueueService{Repo: repo}

	_, err := svc.SetStatus(context.Background(), a, models.StatusDoctor)
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), a, models.StatusCompleted)
	require.NoError(t, err)

	current, err := svc.CurrentConsulting(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, b, current.ID)

	next, err := svc.NextInQueue(context.Background())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, c, next.ID)
}

func TestCurrentConsultingEmpty(t *testing.T) {
	svc := &DefaultQueueService{Repo: opRepo.NewMemoryOPRepo()}

	current, err := svc.CurrentConsulting(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestCurrentConsultingSelfHeals(t *testing.T) {
	// Two Doctor bookings can exist transiently if the demote-then-promote
	// write pair is interrupted; the earliest-created one is canonical.
	repo := opRepo.NewMemoryOPRepo()
	a := seed(t, repo, "A", "09:00", models.StatusDoctor)
	seed(t, repo, "B", "09:05", models.StatusDoctor)
	svc := &DefaultQueueService{Repo: repo}

	current, err := svc.CurrentConsulting(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, a, current.ID)
}

func TestNextInQueueEmpty(t *testing.T) {
	svc := &DefaultQueueService{Repo: opRepo.NewMemoryOPRepo()}

	next, err := svc.NextInQueue(context.Background())
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestNextInQueueNoConsulting(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	a := seed(t, repo, "A", "09:00", models.StatusPending)
	seed(t, repo, "B", "09:05", models.StatusPending)
	svc := &DefaultQueueService{Repo: repo}

	next, err := svc.NextInQueue(context.Background())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, a, next.ID)
}

func TestNextInQueueScansForward(t *testing.T) {
	// Display order is newest first, so "forward" from the consulting
	// booking walks toward older entries.
	repo := opRepo.NewMemoryOPRepo()
	a := seed(t, repo, "A", "09:00", models.StatusPending)
	seed(t, repo, "B", "09:05", models.StatusDoctor)
	seed(t, repo, "C", "09:10", models.StatusPending)
	svc := &DefaultQueueService{Repo: repo}

	next, err := svc.NextInQueue(context.Background())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, a, next.ID)
}

func TestNextInQueueWrapsAround(t *testing.T) {
	// Nothing pending after the consulting booking in display order, so
	// the scan wraps to the entries before it.
	repo := opRepo.NewMemoryOPRepo()
	seed(t, repo, "A", "09:00", models.StatusDoctor)
	seed(t, repo, "B", "09:05", models.StatusCompleted)
	c := seed(t, repo, "C", "09:10", models.StatusPending)
	svc := &DefaultQueueService{Repo: repo}

	next, err := svc.NextInQueue(context.Background())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, c, next.ID)
}

func TestNextInQueueNonePending(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	seed(t, repo, "A", "09:00", models.StatusDoctor)
	seed(t, repo, "B", "09:05", models.StatusCompleted)
	svc := &DefaultQueueService{Repo: repo}

	next, err := svc.NextInQueue(context.Background())
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestListTodayFIFO(t *testing.T) {
	repo := opRepo.NewMemoryOPRepo()
	a := seed(t, repo, "A", "09:00", models.StatusPending)
	b := seed(t, repo, "B", "09:05", models.StatusPending)
	c := seed(t, repo, "C", "09:10", models.StatusPending)
	svc := &DefaultQueueService{Repo: repo}

	ops, err := svc.ListToday(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, []string{a, b, c}, []string{ops[0].ID, ops[1].ID, ops[2].ID})
}
