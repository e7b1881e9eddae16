package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MedicalRecord is a doctor-authored diagnosis/prescription entry for a
// patient. Records are immutable once created; attachments are opaque URLs.
type MedicalRecord struct {
	ID               uuid.UUID      `json:"id" db:"id"`
	PatientAccountID uuid.UUID      `json:"patient_account_id" db:"patient_account_id"`
	DoctorAccountID  uuid.UUID      `json:"doctor_account_id" db:"doctor_account_id"`
	Diagnosis        string         `json:"diagnosis" db:"diagnosis"`
	Prescription     string         `json:"prescription" db:"prescription"`
	Attachments      pq.StringArray `json:"attachments" db:"attachments"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
}

// MedicalRecordDetail is a record joined with the authoring doctor's and the
// patient's display fields.
type MedicalRecordDetail struct {
	MedicalRecord
	DoctorName     string `json:"doctor_name" db:"doctor_name"`
	Specialization string `json:"specialization,omitempty" db:"specialization"`
	PatientName    string `json:"patient_name" db:"patient_name"`
	PatientEmail   string `json:"patient_email" db:"patient_email"`
}

type CreateRecordRequest struct {
	PatientID    uuid.UUID `json:"patient_id" binding:"required"`
	Diagnosis    string    `json:"diagnosis" binding:"required"`
	Prescription string    `json:"prescription" binding:"required"`
	Attachments  []string  `json:"attachments"`
}
