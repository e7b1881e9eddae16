package model

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a doctor registers without explicit practice details.
const (
	DefaultSpecialization = "General Physician"
	DefaultHospitalName   = "Independent Practice"
)

// DoctorProfile holds the clinical-practice attributes attached to a
// doctor-role Account. Exactly one profile exists per doctor account.
type DoctorProfile struct {
	ID              uuid.UUID `json:"id" db:"id"`
	AccountID       uuid.UUID `json:"account_id" db:"account_id"`
	Specialization  string    `json:"specialization" db:"specialization"`
	ExperienceYears int       `json:"experience_years" db:"experience_years"`
	FeeAmount       float64   `json:"fee_amount" db:"fee_amount"`
	HospitalName    string    `json:"hospital_name" db:"hospital_name"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// DoctorListing is a profile joined with the owning account for the public
// doctor directory.
type DoctorListing struct {
	DoctorProfile
	DoctorName  string `json:"doctor_name" db:"doctor_name"`
	DoctorEmail string `json:"doctor_email" db:"doctor_email"`
}

type CreateDoctorRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=6"`
	Specialization  string  `json:"specialization" binding:"required"`
	ExperienceYears int     `json:"experience_years" binding:"min=0"`
	FeeAmount       float64 `json:"fee_amount" binding:"min=0"`
}

type UpdateProfileRequest struct {
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	ExperienceYears *int     `json:"experience_years"`
	FeeAmount       *float64 `json:"fee_amount"`
	HospitalName    string   `json:"hospital_name"`
}

// ProfileResponse is the own-profile view. Fields beyond the name are empty
// for callers without a doctor profile.
type ProfileResponse struct {
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization,omitempty"`
	ExperienceYears int     `json:"experience_years,omitempty"`
	FeeAmount       float64 `json:"fee_amount,omitempty"`
	HospitalName    string  `json:"hospital_name,omitempty"`
}
