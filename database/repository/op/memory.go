package opRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ashwini/models"
)

// memoryOPRepo is an in-process OPRepository with the same query semantics
// as the Mongo implementation. Used by tests and by local development
// without a database; nothing survives a restart.
type memoryOPRepo struct {
	mu   sync.RWMutex
	ops  []models.OPBooking
	seqs map[string]int64 // insertion order per booking id
	next int64
}

// NewMemoryOPRepo returns an empty in-memory OPRepository.
func NewMemoryOPRepo() OPRepository {
	return &memoryOPRepo{seqs: make(map[string]int64)}
}

func (r *memoryOPRepo) Create(ctx context.Context, op models.OPBooking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	now := time.Now()
	if op.CreatedAt.IsZero() {
		op.CreatedAt = now
	}
	op.UpdatedAt = now

	r.next++
	r.seqs[op.ID] = r.next
	r.ops = append(r.ops, op)
	return op.ID, nil
}

func (r *memoryOPRepo) GetByID(ctx context.Context, id string) (*models.OPBooking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.ops {
		if r.ops[i].ID == id {
			op := r.ops[i]
			return &op, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryOPRepo) GetByOPNumber(ctx context.Context, date, opNumber string) (*models.OPBooking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.ops {
		if r.ops[i].Date == date && r.ops[i].OPNumber == opNumber {
			op := r.ops[i]
			return &op, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryOPRepo) LatestByDate(ctx context.Context, date string) (*models.OPBooking, error) {
	day, err := r.ListByDate(ctx, date, false)
	if err != nil {
		return nil, err
	}
	if len(day) == 0 {
		return nil, ErrNotFound
	}
	op := day[len(day)-1]
	return &op, nil
}

func (r *memoryOPRepo) ListByDate(ctx context.Context, date string, newestFirst bool) ([]models.OPBooking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var day []models.OPBooking
	for _, op := range r.ops {
		if op.Date == date {
			day = append(day, op)
		}
	}
	if newestFirst {
		// time desc, created_at desc, insertion order desc
		sort.SliceStable(day, func(i, j int) bool {
			if day[i].Time != day[j].Time {
				return day[i].Time > day[j].Time
			}
			if !day[i].CreatedAt.Equal(day[j].CreatedAt) {
				return day[i].CreatedAt.After(day[j].CreatedAt)
			}
			return r.seqs[day[i].ID] > r.seqs[day[j].ID]
		})
	} else {
		sort.SliceStable(day, func(i, j int) bool {
			if !day[i].CreatedAt.Equal(day[j].CreatedAt) {
				return day[i].CreatedAt.Before(day[j].CreatedAt)
			}
			return r.seqs[day[i].ID] < r.seqs[day[j].ID]
		})
	}
	return day, nil
}

func (r *memoryOPRepo) ListByStatuses(ctx context.Context, statuses ...models.Status) ([]models.OPBooking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := make(map[models.Status]bool, len(statuses))
	for _, s := range statuses {
		want[s] = true
	}
	var out []models.OPBooking
	for _, op := range r.ops {
		if want[op.Status] {
			out = append(out, op)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return r.seqs[out[i].ID] < r.seqs[out[j].ID]
	})
	return out, nil
}

func (r *memoryOPRepo) EarliestByStatus(ctx context.Context, status models.Status) (*models.OPBooking, error) {
	matches, err := r.ListByStatuses(ctx, status)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	op := matches[0]
	return &op, nil
}

func (r *memoryOPRepo) UpdateByID(ctx context.Context, id string, patch Patch) (*models.OPBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.ops {
		if r.ops[i].ID != id {
			continue
		}
		if patch.Status != nil {
			r.ops[i].Status = *patch.Status
		}
		if patch.DoctorName != nil {
			r.ops[i].DoctorName = *patch.DoctorName
		}
		if patch.Time != nil {
			r.ops[i].Time = *patch.Time
		}
		r.ops[i].UpdatedAt = time.Now()
		op := r.ops[i]
		return &op, nil
	}
	return nil, ErrNotFound
}

func (r *memoryOPRepo) ReassignStatus(ctx context.Context, from, to models.Status, exceptID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for i := range r.ops {
		if r.ops[i].Status == from && r.ops[i].ID != exceptID {
			r.ops[i].Status = to
			r.ops[i].UpdatedAt = time.Now()
			n++
		}
	}
	return n, nil
}

func (r *memoryOPRepo) CountByDate(ctx context.Context, date string, statuses ...models.Status) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := make(map[models.Status]bool, len(statuses))
	for _, s := range statuses {
		want[s] = true
	}
	var n int64
	for _, op := range r.ops {
		if op.Date != date {
			continue
		}
		if len(statuses) > 0 && !want[op.Status] {
			continue
		}
		n++
	}
	return n, nil
}
