package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/repository"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
	"github.com/nikhilkumar-05/MediCare/pkg/metrics"
)

type Service struct {
	repo repository.MedicalRecordRepository
}

func NewService(repo repository.MedicalRecordRepository) *Service {
	return &Service{repo: repo}
}

// Create stores an immutable record authored by the calling doctor. The
// authoring doctor's account id is stamped server-side; the patient id is not
// validated against a prior appointment.
func (s *Service) Create(ctx context.Context, doctor *model.Account, req *model.CreateRecordRequest) (*model.MedicalRecord, error) {
	attachments := req.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	rec := &model.MedicalRecord{
		PatientAccountID: req.PatientID,
		DoctorAccountID:  doctor.ID,
		Diagnosis:        req.Diagnosis,
		Prescription:     req.Prescription,
		Attachments:      attachments,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create medical record: %w", err)
	}

	metrics.MedicalRecordsCreatedTotal.Inc()
	return rec, nil
}

// ListForPatient returns a patient's records. Patient callers may only fetch
// their own; doctors and admins may fetch any patient's.
func (s *Service) ListForPatient(ctx context.Context, caller *model.Account, patientID uuid.UUID) ([]*model.MedicalRecordDetail, error) {
	if caller.Role == model.RolePatient && caller.ID != patientID {
		return nil, apperrors.Forbidden("not authorized to view these records")
	}

	records, err := s.repo.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}
