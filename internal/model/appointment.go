package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusApproved  AppointmentStatus = "approved"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// validTransitions is the appointment lifecycle: pending is the initial
// state, completed and cancelled are terminal. Cancelling an approved
// appointment is allowed.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:  {AppointmentStatusApproved, AppointmentStatusCancelled},
	AppointmentStatusApproved: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

func ValidAppointmentStatus(status AppointmentStatus) bool {
	switch status {
	case AppointmentStatusPending, AppointmentStatusApproved,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a scheduled patient-doctor encounter. Appointments are never
// deleted; they only move through the lifecycle.
type Appointment struct {
	ID               uuid.UUID         `json:"id" db:"id"`
	PatientAccountID uuid.UUID         `json:"patient_account_id" db:"patient_account_id"`
	DoctorProfileID  uuid.UUID         `json:"doctor_profile_id" db:"doctor_profile_id"`
	ScheduledAt      time.Time         `json:"scheduled_at" db:"scheduled_at"`
	Status           AppointmentStatus `json:"status" db:"status"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}

// AppointmentDetail is an appointment joined with the counterpart's display
// fields for role-aware listings.
type AppointmentDetail struct {
	Appointment
	DoctorName     string  `json:"doctor_name,omitempty" db:"doctor_name"`
	Specialization string  `json:"specialization,omitempty" db:"specialization"`
	FeeAmount      float64 `json:"fee_amount,omitempty" db:"fee_amount"`
	HospitalName   string  `json:"hospital_name,omitempty" db:"hospital_name"`
	PatientName    string  `json:"patient_name,omitempty" db:"patient_name"`
	PatientEmail   string  `json:"patient_email,omitempty" db:"patient_email"`
}

type CreateAppointmentRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}
