package record

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilkumar-05/MediCare/internal/model"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
)

type mockRecordRepo struct {
	createFunc         func(ctx context.Context, record *model.MedicalRecord) error
	listForPatientFunc func(ctx context.Context, patientAccountID uuid.UUID) ([]*model.MedicalRecordDetail, error)
}

func (m *mockRecordRepo) Create(ctx context.Context, record *model.MedicalRecord) error {
	return m.createFunc(ctx, record)
}

func (m *mockRecordRepo) ListForPatient(ctx context.Context, patientAccountID uuid.UUID) ([]*model.MedicalRecordDetail, error) {
	return m.listForPatientFunc(ctx, patientAccountID)
}

func TestCreateStampsAuthoringDoctor(t *testing.T) {
	doctor := &model.Account{ID: uuid.New(), Role: model.RoleDoctor}
	patientID := uuid.New()

	var created *model.MedicalRecord
	repo := &mockRecordRepo{
		createFunc: func(ctx context.Context, record *model.MedicalRecord) error {
			record.ID = uuid.New()
			created = record
			return nil
		},
	}
	svc := NewService(repo)

	rec, err := svc.Create(context.Background(), doctor, &model.CreateRecordRequest{
		PatientID:    patientID,
		Diagnosis:    "Hypertension",
		Prescription: "Amlodipine 5mg",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, doctor.ID, rec.DoctorAccountID)
	assert.Equal(t, patientID, rec.PatientAccountID)
	assert.NotNil(t, rec.Attachments)
	assert.Empty(t, rec.Attachments)
}

func TestCreateKeepsAttachments(t *testing.T) {
	repo := &mockRecordRepo{
		createFunc: func(ctx context.Context, record *model.MedicalRecord) error {
			record.ID = uuid.New()
			return nil
		},
	}
	svc := NewService(repo)

	rec, err := svc.Create(context.Background(), &model.Account{ID: uuid.New(), Role: model.RoleDoctor}, &model.CreateRecordRequest{
		PatientID:    uuid.New(),
		Diagnosis:    "Fracture",
		Prescription: "Rest",
		Attachments:  []string{"xray-1.png", "xray-2.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"xray-1.png", "xray-2.png"}, []string(rec.Attachments))
}

func TestListForPatientOwnershipCheck(t *testing.T) {
	patientID := uuid.New()
	repo := &mockRecordRepo{
		listForPatientFunc: func(ctx context.Context, id uuid.UUID) ([]*model.MedicalRecordDetail, error) {
			return []*model.MedicalRecordDetail{{DoctorName: "Dr. Rao"}}, nil
		},
	}
	svc := NewService(repo)

	patient := &model.Account{ID: patientID, Role: model.RolePatient}
	records, err := svc.ListForPatient(context.Background(), patient, patientID)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = svc.ListForPatient(context.Background(), patient, uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrForbidden))
}

func TestListForPatientDoctorAndAdminSeeAny(t *testing.T) {
	repo := &mockRecordRepo{
		listForPatientFunc: func(ctx context.Context, id uuid.UUID) ([]*model.MedicalRecordDetail, error) {
			return []*model.MedicalRecordDetail{}, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.ListForPatient(context.Background(), &model.Account{ID: uuid.New(), Role: model.RoleDoctor}, uuid.New())
	assert.NoError(t, err)

	_, err = svc.ListForPatient(context.Background(), &model.Account{ID: uuid.New(), Role: model.RoleAdmin}, uuid.New())
	assert.NoError(t, err)
}
