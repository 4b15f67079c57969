package notification

import (
	"context"
	"fmt"
	"strings"

	"ashwini/config"
)

// SMSSender dispatches a single SMS message. Sends are synchronous: a
// failure here is reported to the caller of the operation that triggered it.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// SendError wraps an SMS dispatch failure so callers can tell it apart from
// persistence failures.
type SendError struct {
	To  string
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("sms to %s failed: %v", e.To, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// NormalizeNumber prefixes the configured country code onto a locally-dialed
// number. Numbers already in international form are passed through.
func NormalizeNumber(raw string) string {
	n := strings.TrimSpace(raw)
	if n == "" || strings.HasPrefix(n, "+") {
		return n
	}
	return config.AppConfig.SMSCountryCode + n
}

// BookingConfirmationBody renders the SMS sent after a successful booking.
func BookingConfirmationBody(opNumber, eta string) string {
	return fmt.Sprintf("%s\nYour OP booked successfully!\nOP Number: %s\nDoctor ETA: %s\nTrack: %s",
		config.AppConfig.ClinicName, opNumber, eta, config.AppConfig.TrackURL)
}

// ReportReadyBody renders the SMS sent when a patient's report is ready.
func ReportReadyBody(patientName string) string {
	return fmt.Sprintf("Dear %s, your report is ready for collection at %s.",
		patientName, config.AppConfig.ClinicName)
}
