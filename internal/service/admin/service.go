package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/repository"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
	"github.com/nikhilkumar-05/MediCare/pkg/metrics"
)

const bcryptCost = 10

// Hospital name used for admin-created doctors, who carry explicit practice
// details everywhere else.
const adminCreatedHospitalName = "Medicare General Hospital"

type Service struct {
	accountRepo repository.AccountRepository
}

func NewService(accountRepo repository.AccountRepository) *Service {
	return &Service{accountRepo: accountRepo}
}

// CreateDoctor provisions a doctor account with explicit practice details.
// Account and profile are created together or not at all.
func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Account, error) {
	if req.ExperienceYears < 0 {
		return nil, apperrors.Validation("experience_years must not be negative")
	}
	if req.FeeAmount < 0 {
		return nil, apperrors.Validation("fee_amount must not be negative")
	}

	if _, err := s.accountRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.Conflict("email already registered")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &model.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleDoctor,
	}
	profile := &model.DoctorProfile{
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		FeeAmount:       req.FeeAmount,
		HospitalName:    adminCreatedHospitalName,
	}

	if err := s.accountRepo.CreateWithProfile(ctx, account, profile); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues(model.RoleDoctor).Inc()
	log.Info().Str("account_id", account.ID.String()).Msg("doctor created by admin")

	return account, nil
}

// ListAccounts returns every account. The password hash never serializes.
func (s *Service) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ToggleBlock flips the blocked flag on any account, admins included.
func (s *Service) ToggleBlock(ctx context.Context, accountID uuid.UUID) (*model.Account, error) {
	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("account")
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	account.IsBlocked = !account.IsBlocked
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	log.Info().Str("account_id", account.ID.String()).Bool("is_blocked", account.IsBlocked).Msg("account block toggled")
	return account, nil
}
