package models

import "time"

// Display layouts used across the whole service. Date is the per-day
// partition key for every "today" query: it is computed once when a booking
// is created and never recomputed afterwards.
const (
	DateLayout = "02-01-2006"
	TimeLayout = "15:04"
)

// Default field values for a fresh booking.
const (
	DefaultDoctorName = "Not Assigned"
	DefaultDepartment = "General"
)

// OPBooking is an outpatient booking record.
type OPBooking struct {
	ID            string    `bson:"id" json:"id"`
	OPNumber      string    `bson:"op_number" json:"opNumber"`         // "OP-NN", per-day sequence
	PatientName   string    `bson:"patient_name" json:"patientName"`
	PatientNumber string    `bson:"patient_number" json:"patientNumber"`
	Age           int       `bson:"age" json:"age"`
	DoctorName    string    `bson:"doctor_name" json:"doctorName"`
	Department    string    `bson:"department" json:"department"`
	Time          string    `bson:"time" json:"time"` // time of creation or of the last status change
	Date          string    `bson:"date" json:"date"` // partition key, DateLayout
	Status        Status    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookOPRequest is the patient-facing booking payload.
type BookOPRequest struct {
	Name       string `json:"name"`
	Number     string `json:"number"`
	Age        int    `json:"age"`
	DoctorName string `json:"doctorName"`
	Department string `json:"department"`
	Time       string `json:"time"`
}

// BookOPResponse is returned to the frontend after a successful booking.
type BookOPResponse struct {
	OPNumber string `json:"opNumber"`
	ETA      string `json:"eta"`
}

// DashboardCounts aggregates today's bookings per status bucket. OPCount
// groups Pending and Doctor together (waiting or in consultation).
type DashboardCounts struct {
	OPCount        int64 `json:"opCount"`
	ReportCount    int64 `json:"reportCount"`
	CompletedCount int64 `json:"completedCount"`
	TotalCount     int64 `json:"totalCount"`
}

// ReportEntry is the reduced view served to the report desk.
type ReportEntry struct {
	OPNumber string `json:"opNo"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Status   Status `json:"status"`
}
