package models

import "fmt"

// Status is the closed set of booking lifecycle states.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusDoctor    Status = "Doctor"
	StatusReport    Status = "Report"
	StatusReady     Status = "Ready"
	StatusCompleted Status = "Completed"
)

// transitions is the allowed state machine. Doctor -> Pending exists because
// promoting a booking into the consulting slot demotes whoever held it.
// Completed is terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusDoctor, StatusCompleted},
	StatusDoctor:    {StatusPending, StatusReport, StatusCompleted},
	StatusReport:    {StatusReady, StatusCompleted},
	StatusReady:     {StatusCompleted},
	StatusCompleted: {},
}

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if _, ok := transitions[s]; !ok {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
