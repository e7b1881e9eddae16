package admin

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nikhilkumar-05/MediCare/internal/model"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
)

type mockAccountRepo struct {
	createWithProfileFunc func(ctx context.Context, account *model.Account, profile *model.DoctorProfile) error
	getFunc               func(ctx context.Context, id uuid.UUID) (*model.Account, error)
	getByEmailFunc        func(ctx context.Context, email string) (*model.Account, error)
	updateFunc            func(ctx context.Context, account *model.Account) error
	listFunc              func(ctx context.Context) ([]*model.Account, error)
}

func (m *mockAccountRepo) Create(ctx context.Context, account *model.Account) error { return nil }

func (m *mockAccountRepo) CreateWithProfile(ctx context.Context, account *model.Account, profile *model.DoctorProfile) error {
	return m.createWithProfileFunc(ctx, account, profile)
}

func (m *mockAccountRepo) Get(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	return m.getFunc(ctx, id)
}

func (m *mockAccountRepo) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockAccountRepo) Update(ctx context.Context, account *model.Account) error {
	return m.updateFunc(ctx, account)
}

func (m *mockAccountRepo) List(ctx context.Context) ([]*model.Account, error) {
	return m.listFunc(ctx)
}

func TestCreateDoctorUsesExplicitDetails(t *testing.T) {
	var account *model.Account
	var profile *model.DoctorProfile
	repo := &mockAccountRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.Account, error) {
			return nil, sql.ErrNoRows
		},
		createWithProfileFunc: func(ctx context.Context, a *model.Account, p *model.DoctorProfile) error {
			a.ID = uuid.New()
			account = a
			profile = p
			return nil
		},
	}
	svc := NewService(repo)

	created, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name:            "Dr. Rao",
		Email:           "rao@example.com",
		Password:        "secret1",
		Specialization:  "Cardiologist",
		ExperienceYears: 12,
		FeeAmount:       1000,
	})
	require.NoError(t, err)
	require.NotNil(t, account)
	require.NotNil(t, profile)

	assert.Equal(t, model.RoleDoctor, created.Role)
	assert.Equal(t, "Cardiologist", profile.Specialization)
	assert.Equal(t, 12, profile.ExperienceYears)
	assert.Equal(t, 1000.0, profile.FeeAmount)
	assert.Equal(t, adminCreatedHospitalName, profile.HospitalName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))
}

func TestCreateDoctorDuplicateEmail(t *testing.T) {
	repo := &mockAccountRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.Account, error) {
			return &model.Account{ID: uuid.New(), Email: email}, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name:           "Dr. Rao",
		Email:          "rao@example.com",
		Password:       "secret1",
		Specialization: "Cardiologist",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))
}

func TestCreateDoctorNegativeValues(t *testing.T) {
	svc := NewService(&mockAccountRepo{})

	_, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name:            "Dr. Rao",
		Email:           "rao@example.com",
		Password:        "secret1",
		Specialization:  "Cardiologist",
		ExperienceYears: -1,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))

	_, err = svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name:           "Dr. Rao",
		Email:          "rao@example.com",
		Password:       "secret1",
		Specialization: "Cardiologist",
		FeeAmount:      -100,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))
}

func TestToggleBlockFlipsFlag(t *testing.T) {
	account := &model.Account{ID: uuid.New(), Role: model.RolePatient}
	repo := &mockAccountRepo{
		getFunc: func(ctx context.Context, id uuid.UUID) (*model.Account, error) {
			return account, nil
		},
		updateFunc: func(ctx context.Context, a *model.Account) error {
			return nil
		},
	}
	svc := NewService(repo)

	blocked, err := svc.ToggleBlock(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)

	unblocked, err := svc.ToggleBlock(context.Background(), account.ID)
	require.NoError(t, err)
	assert.False(t, unblocked.IsBlocked)
}

func TestToggleBlockTargetsAdminsToo(t *testing.T) {
	admin := &model.Account{ID: uuid.New(), Role: model.RoleAdmin}
	repo := &mockAccountRepo{
		getFunc: func(ctx context.Context, id uuid.UUID) (*model.Account, error) {
			return admin, nil
		},
		updateFunc: func(ctx context.Context, a *model.Account) error {
			return nil
		},
	}
	svc := NewService(repo)

	blocked, err := svc.ToggleBlock(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)
}

func TestToggleBlockMissingAccount(t *testing.T) {
	repo := &mockAccountRepo{
		getFunc: func(ctx context.Context, id uuid.UUID) (*model.Account, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := NewService(repo)

	_, err := svc.ToggleBlock(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}
