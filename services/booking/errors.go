package booking

import "fmt"

// ValidationError reports a missing required booking field. No record is
// persisted and no SMS is sent when one is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func newValidationError(field string) error {
	return &ValidationError{Field: field}
}
