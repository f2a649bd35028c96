package domain

import "time"

// Roster is the clinic's staff and patient list as declared in roster.yaml.
type Roster struct {
	Clinic        *Clinic
	Practitioners []*Practitioner
	Patients      []*Patient
}

// ScheduleEntry is a flattened, export-friendly view of one booking.
type ScheduleEntry struct {
	BookingID    string `json:"booking_id"`
	Practitioner string `json:"practitioner"`
	Patient      string `json:"patient"`
	PatientPhone string `json:"patient_phone"`
	PatientEmail string `json:"patient_email"`
	Type         string `json:"type"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Confirmed    bool   `json:"confirmed"`
	Notes        string `json:"notes,omitempty"`
}

// ScheduleExport is a day's schedule for the whole clinic.
type ScheduleExport struct {
	Clinic      string          `json:"clinic"`
	Date        string          `json:"date"`
	GeneratedAt time.Time       `json:"generated_at"`
	Entries     []ScheduleEntry `json:"entries"`
}
