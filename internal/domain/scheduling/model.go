package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/cardiocheck/cardiocheck/internal/risk"
)

// AppointmentStatus is the lifecycle state of a follow-up appointment.
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusFulfilled AppointmentStatus = "fulfilled"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment maps to the appointment table. An appointment may reference
// the assessment that prompted it.
type Appointment struct {
	ID           uuid.UUID         `db:"id" json:"id"`
	PatientID    uuid.UUID         `db:"patient_id" json:"patient_id"`
	AssessmentID *uuid.UUID        `db:"assessment_id" json:"assessment_id,omitempty"`
	Status       AppointmentStatus `db:"status" json:"status"`
	StartTime    time.Time         `db:"start_time" json:"start_time"`
	EndTime      *time.Time        `db:"end_time" json:"end_time,omitempty"`
	Reason       *string           `db:"reason" json:"reason,omitempty"`
	Note         *string           `db:"note" json:"note,omitempty"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updated_at"`
}

// validTransitions encodes the appointment lifecycle. Terminal states have
// no outgoing edges.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusBooked: {StatusFulfilled, StatusCancelled, StatusNoShow},
}

// CanTransition reports whether the status change is allowed.
func (s AppointmentStatus) CanTransition(to AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// FollowUpWindow returns how soon after an assessment of the given category a
// follow-up should be booked. Low-risk assessments need none; a critical one
// needs immediate care rather than a booking, so its window is zero.
func FollowUpWindow(category risk.RiskCategory) (time.Duration, bool) {
	switch category {
	case risk.CategoryMild:
		return 14 * 24 * time.Hour, true
	case risk.CategoryModerate:
		return 48 * time.Hour, true
	case risk.CategoryHigh:
		return 24 * time.Hour, true
	case risk.CategoryCritical:
		return 0, true
	default:
		return 0, false
	}
}
