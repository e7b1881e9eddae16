package appointment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilkumar-05/MediCare/internal/model"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
)

type mockAppointmentRepo struct {
	createFunc         func(ctx context.Context, appointment *model.Appointment) error
	getFunc            func(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	updateFunc         func(ctx context.Context, appointment *model.Appointment) error
	listForPatientFunc func(ctx context.Context, patientAccountID uuid.UUID) ([]*model.AppointmentDetail, error)
	listForDoctorFunc  func(ctx context.Context, doctorProfileID uuid.UUID) ([]*model.AppointmentDetail, error)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	return m.createFunc(ctx, appointment)
}

func (m *mockAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return m.getFunc(ctx, id)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appointment *model.Appointment) error {
	return m.updateFunc(ctx, appointment)
}

func (m *mockAppointmentRepo) ListForPatient(ctx context.Context, patientAccountID uuid.UUID) ([]*model.AppointmentDetail, error) {
	return m.listForPatientFunc(ctx, patientAccountID)
}

func (m *mockAppointmentRepo) ListForDoctor(ctx context.Context, doctorProfileID uuid.UUID) ([]*model.AppointmentDetail, error) {
	return m.listForDoctorFunc(ctx, doctorProfileID)
}

type mockDoctorRepo struct {
	createFunc         func(ctx context.Context, profile *model.DoctorProfile) error
	getFunc            func(ctx context.Context, id uuid.UUID) (*model.DoctorProfile, error)
	getByAccountIDFunc func(ctx context.Context, accountID uuid.UUID) (*model.DoctorProfile, error)
	updateFunc         func(ctx context.Context, profile *model.DoctorProfile) error
	listFunc           func(ctx context.Context) ([]*model.DoctorListing, error)
}

func (m *mockDoctorRepo) Create(ctx context.Context, profile *model.DoctorProfile) error {
	return m.createFunc(ctx, profile)
}

func (m *mockDoctorRepo) Get(ctx context.Context, id uuid.UUID) (*model.DoctorProfile, error) {
	return m.getFunc(ctx, id)
}

func (m *mockDoctorRepo) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*model.DoctorProfile, error) {
	return m.getByAccountIDFunc(ctx, accountID)
}

func (m *mockDoctorRepo) Update(ctx context.Context, profile *model.DoctorProfile) error {
	return m.updateFunc(ctx, profile)
}

func (m *mockDoctorRepo) List(ctx context.Context) ([]*model.DoctorListing, error) {
	return m.listFunc(ctx)
}

func TestBookStartsPending(t *testing.T) {
	doctorProfileID := uuid.New()
	patient := &model.Account{ID: uuid.New(), Role: model.RolePatient}

	var created *model.Appointment
	repo := &mockAppointmentRepo{
		createFunc: func(ctx context.Context, appointment *model.Appointment) error {
			appointment.ID = uuid.New()
			created = appointment
			return nil
		},
	}
	doctors := &mockDoctorRepo{
		getFunc: func(ctx context.Context, id uuid.UUID) (*model.DoctorProfile, error) {
			return &model.DoctorProfile{ID: id}, nil
		},
	}
	svc := NewService(repo, doctors)

	when := time.Now().Add(48 * time.Hour)
	appt, err := svc.Book(context.Background(), patient, &model.CreateAppointmentRequest{
		DoctorID:    doctorProfileID,
		ScheduledAt: when,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, model.AppointmentStatusPending, appt.Status)
	assert.Equal(t, patient.ID, appt.PatientAccountID)
	assert.Equal(t, doctorProfileID, appt.DoctorProfileID)
	assert.Equal(t, when, appt.ScheduledAt)
}

func TestBookUnknownDoctor(t *testing.T) {
	doctors := &mockDoctorRepo{
		getFunc: func(ctx context.Context, id uuid.UUID) (*model.DoctorProfile, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := NewService(&mockAppointmentRepo{}, doctors)

	_, err := svc.Book(context.Background(), &model.Account{ID: uuid.New()}, &model.CreateAppointmentRequest{
		DoctorID:    uuid.New(),
		ScheduledAt: time.Now(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestBookAllowsOverlappingSlots(t *testing.T) {
	repo := &mockAppointmentRepo{
		createFunc: func(ctx context.Context, appointment *model.Appointment) error {
			appointment.ID = uuid.New()
			return nil
		},
	}
	doctors := &mockDoctorRepo{
		getFunc: func(ctx context.Context, id uuid.UUID) (*model.DoctorProfile, error) {
			return &model.DoctorProfile{ID: id}, nil
		},
	}
	svc := NewService(repo, doctors)

	req := &model.CreateAppointmentRequest{DoctorID: uuid.New(), ScheduledAt: time.Now().Add(time.Hour)}
	patient := &model.Account{ID: uuid.New(), Role: model.RolePatient}

	_, err := svc.Book(context.Background(), patient, req)
	require.NoError(t, err)
	_, err = svc.Book(context.Background(), patient, req)
	require.NoError(t, err)
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    model.AppointmentStatus
		to      model.AppointmentStatus
		allowed bool
	}{
		{"pending to approved", model.AppointmentStatusPending, model.AppointmentStatusApproved, true},
		{"pending to cancelled", model.AppointmentStatusPending, model.AppointmentStatusCancelled, true},
		{"pending to completed", model.AppointmentStatusPending, model.AppointmentStatusCompleted, false},
		{"approved to completed", model.AppointmentStatusApproved, model.AppointmentStatusCompleted, true},
		{"approved to cancelled", model.AppointmentStatusApproved, model.AppointmentStatusCancelled, true},
		{"approved to pending", model.AppointmentStatusApproved, model.AppointmentStatusPending, false},
		{"completed is terminal", model.AppointmentStatusCompleted, model.AppointmentStatusCancelled, false},
		{"cancelled is terminal", model.AppointmentStatusCancelled, model.AppointmentStatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := &model.Appointment{ID: uuid.New(), Status: tt.from}
			repo := &mockAppointmentRepo{
				getFunc: func(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
					return appt, nil
				},
				updateFunc: func(ctx context.Context, appointment *model.Appointment) error {
					return nil
				},
			}
			svc := NewService(repo, &mockDoctorRepo{})

			updated, err := svc.UpdateStatus(context.Background(), appt.ID, tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, updated.Status)
			} else {
				require.Error(t, err)
				assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))
			}
		})
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, &mockDoctorRepo{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "archived")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))
}

func TestUpdateStatusMissingAppointment(t *testing.T) {
	repo := &mockAppointmentRepo{
		getFunc: func(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := NewService(repo, &mockDoctorRepo{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), model.AppointmentStatusApproved)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestListMineByRole(t *testing.T) {
	patientID := uuid.New()
	doctorAccountID := uuid.New()
	profileID := uuid.New()

	repo := &mockAppointmentRepo{
		listForPatientFunc: func(ctx context.Context, id uuid.UUID) ([]*model.AppointmentDetail, error) {
			assert.Equal(t, patientID, id)
			return []*model.AppointmentDetail{{DoctorName: "Dr. Rao"}}, nil
		},
		listForDoctorFunc: func(ctx context.Context, id uuid.UUID) ([]*model.AppointmentDetail, error) {
			assert.Equal(t, profileID, id)
			return []*model.AppointmentDetail{{PatientName: "Asha"}, {PatientName: "Ravi"}}, nil
		},
	}
	doctors := &mockDoctorRepo{
		getByAccountIDFunc: func(ctx context.Context, accountID uuid.UUID) (*model.DoctorProfile, error) {
			assert.Equal(t, doctorAccountID, accountID)
			return &model.DoctorProfile{ID: profileID, AccountID: accountID}, nil
		},
	}
	svc := NewService(repo, doctors)

	asPatient, err := svc.ListMine(context.Background(), &model.Account{ID: patientID, Role: model.RolePatient})
	require.NoError(t, err)
	assert.Len(t, asPatient, 1)

	asDoctor, err := svc.ListMine(context.Background(), &model.Account{ID: doctorAccountID, Role: model.RoleDoctor})
	require.NoError(t, err)
	assert.Len(t, asDoctor, 2)

	asAdmin, err := svc.ListMine(context.Background(), &model.Account{ID: uuid.New(), Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, asAdmin)
}

func TestListMineDoctorWithoutProfile(t *testing.T) {
	doctors := &mockDoctorRepo{
		getByAccountIDFunc: func(ctx context.Context, accountID uuid.UUID) (*model.DoctorProfile, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := NewService(&mockAppointmentRepo{}, doctors)

	appointments, err := svc.ListMine(context.Background(), &model.Account{ID: uuid.New(), Role: model.RoleDoctor})
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

// Walks an appointment through the full booking lifecycle.
func TestAppointmentLifecycle(t *testing.T) {
	store := map[uuid.UUID]*model.Appointment{}
	repo := &mockAppointmentRepo{
		createFunc: func(ctx context.Context, appointment *model.Appointment) error {
			appointment.ID = uuid.New()
			store[appointment.ID] = appointment
			return nil
		},
		getFunc: func(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
			appt, ok := store[id]
			if !ok {
				return nil, sql.ErrNoRows
			}
			cp := *appt
			return &cp, nil
		},
		updateFunc: func(ctx context.Context, appointment *model.Appointment) error {
			store[appointment.ID] = appointment
			return nil
		},
	}
	doctors := &mockDoctorRepo{
		getFunc: func(ctx context.Context, id uuid.UUID) (*model.DoctorProfile, error) {
			return &model.DoctorProfile{ID: id}, nil
		},
	}
	svc := NewService(repo, doctors)

	patient := &model.Account{ID: uuid.New(), Role: model.RolePatient}
	appt, err := svc.Book(context.Background(), patient, &model.CreateAppointmentRequest{
		DoctorID:    uuid.New(),
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusPending, appt.Status)

	approved, err := svc.UpdateStatus(context.Background(), appt.ID, model.AppointmentStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusApproved, approved.Status)

	completed, err := svc.UpdateStatus(context.Background(), appt.ID, model.AppointmentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, completed.Status)

	_, err = svc.UpdateStatus(context.Background(), appt.ID, model.AppointmentStatusCancelled)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))
}
