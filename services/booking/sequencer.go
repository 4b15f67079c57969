package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	opRepo "ashwini/database/repository/op"
)

const opNumberPrefix = "OP-"

// Sequencer hands out the per-day OP number sequence: OP-01, OP-02, ...
// resetting each calendar day. Allocation is find-latest-then-increment, so
// two bookings racing within the same window can compute the same number;
// that is accepted for a single clinic desk. An atomic per-day counter in
// the store would close the race.
type Sequencer struct {
	Repo opRepo.OPRepository

	// AllowFallback enables a process-local counter when the store is
	// unreachable. The counter is not durable and not shared across
	// instances; with it disabled a store failure fails the booking.
	AllowFallback bool

	mu       sync.Mutex
	fallback int
}

// Next returns the OP number for the next booking of the given day.
func (s *Sequencer) Next(ctx context.Context, date string) (string, error) {
	latest, err := s.Repo.LatestByDate(ctx, date)
	if errors.Is(err, opRepo.ErrNotFound) {
		return FormatOPNumber(1), nil
	}
	if err != nil {
		if s.AllowFallback {
			s.mu.Lock()
			s.fallback++
			n := s.fallback
			s.mu.Unlock()
			return FormatOPNumber(n), nil
		}
		return "", fmt.Errorf("sequencer: failed to read latest booking: %w", err)
	}
	return FormatOPNumber(parseOPNumber(latest.OPNumber) + 1), nil
}

// FormatOPNumber renders a sequence value as "OP-NN", zero-padded to two
// digits. Past 99 the padding is a no-op and the number simply grows.
func FormatOPNumber(n int) string {
	return fmt.Sprintf("%s%02d", opNumberPrefix, n)
}

// parseOPNumber extracts the numeric suffix of an OP number. Malformed
// values count as 0 so the sequence restarts at the next slot instead of
// failing the booking.
func parseOPNumber(opNumber string) int {
	_, suffix, found := strings.Cut(opNumber, "-")
	if !found {
		return 0
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
