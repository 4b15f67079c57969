package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"Pending", "Doctor", "Report", "Ready", "Completed"} {
		s, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, Status(raw), s)
	}

	_, err := ParseStatus("1st Done")
	assert.Error(t, err)
	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusDoctor, true},
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusReport, false},
		{StatusDoctor, StatusPending, true},
		{StatusDoctor, StatusReport, true},
		{StatusDoctor, StatusCompleted, true},
		{StatusReport, StatusReady, true},
		{StatusReport, StatusCompleted, true},
		{StatusReport, StatusDoctor, false},
		{StatusReady, StatusCompleted, true},
		{StatusReady, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusDoctor, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("Paid").Valid())
}
