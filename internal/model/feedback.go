package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback rating bounds, inclusive. Out-of-range ratings are rejected, not
// clamped.
const (
	MinFeedbackRating = 1
	MaxFeedbackRating = 5
)

// Feedback is an immutable patient-authored rating/comment for a doctor.
type Feedback struct {
	ID               uuid.UUID `json:"id" db:"id"`
	PatientAccountID uuid.UUID `json:"patient_account_id" db:"patient_account_id"`
	DoctorProfileID  uuid.UUID `json:"doctor_profile_id" db:"doctor_profile_id"`
	Rating           int       `json:"rating" db:"rating"`
	Comment          string    `json:"comment" db:"comment"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// FeedbackDetail resolves the counterpart's display name for role-aware
// listings: the doctor's name for patient callers, the patient's name for
// doctor callers.
type FeedbackDetail struct {
	Feedback
	DoctorName  string `json:"doctor_name,omitempty" db:"doctor_name"`
	PatientName string `json:"patient_name,omitempty" db:"patient_name"`
}

type CreateFeedbackRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" binding:"required"`
	Rating   int       `json:"rating" binding:"required"`
	Comment  string    `json:"comment" binding:"required"`
}
