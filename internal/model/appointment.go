package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

// Canonical status labels. The store accepts any label; these are the
// values the front desk actually uses.
const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientID    uuid.UUID `db:"patient_id" json:"patientId"`
	Professional string    `db:"professional" json:"professional"`
	// ScheduledAt holds the composed "<date>T<time>:00Z" string verbatim,
	// so values that never parsed as a real instant survive a round trip.
	ScheduledAt string    `db:"scheduled_at" json:"scheduledAt"`
	Reason      string    `db:"reason" json:"reason"`
	Status      string    `db:"status" json:"status"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// AppointmentView is the read projection: the stored record plus the
// referenced patient's display name and the timestamp split back into the
// two strings the booking form edits.
type AppointmentView struct {
	Appointment
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DisplayDate string `json:"displayDate"`
	DisplayTime string `json:"displayTime"`
}

type AppointmentRequest struct {
	PatientID    string `json:"patientId"`
	Professional string `json:"professional"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}
