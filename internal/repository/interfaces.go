package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nikhilkumar-05/MediCare/internal/model"
)

// All repository interfaces in one file
type (
	// AccountRepository handles account operations
	AccountRepository interface {
		Create(ctx context.Context, account *model.Account) error
		CreateWithProfile(ctx context.Context, account *model.Account, profile *model.DoctorProfile) error
		Get(ctx context.Context, id uuid.UUID) (*model.Account, error)
		GetByEmail(ctx context.Context, email string) (*model.Account, error)
		Update(ctx context.Context, account *model.Account) error
		List(ctx context.Context) ([]*model.Account, error)
	}

	// DoctorRepository handles doctor profile operations
	DoctorRepository interface {
		Create(ctx context.Context, profile *model.DoctorProfile) error
		Get(ctx context.Context, id uuid.UUID) (*model.DoctorProfile, error)
		GetByAccountID(ctx context.Context, accountID uuid.UUID) (*model.DoctorProfile, error)
		Update(ctx context.Context, profile *model.DoctorProfile) error
		List(ctx context.Context) ([]*model.DoctorListing, error)
	}

	// AppointmentRepository handles appointment persistence. Appointments are
	// never deleted.
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		ListForPatient(ctx context.Context, patientAccountID uuid.UUID) ([]*model.AppointmentDetail, error)
		ListForDoctor(ctx context.Context, doctorProfileID uuid.UUID) ([]*model.AppointmentDetail, error)
	}

	// MedicalRecordRepository handles immutable medical records
	MedicalRecordRepository interface {
		Create(ctx context.Context, record *model.MedicalRecord) error
		ListForPatient(ctx context.Context, patientAccountID uuid.UUID) ([]*model.MedicalRecordDetail, error)
	}

	// FeedbackRepository handles immutable feedback entries
	FeedbackRepository interface {
		Create(ctx context.Context, feedback *model.Feedback) error
		ListForPatient(ctx context.Context, patientAccountID uuid.UUID) ([]*model.FeedbackDetail, error)
		ListForDoctor(ctx context.Context, doctorProfileID uuid.UUID) ([]*model.FeedbackDetail, error)
	}
)
