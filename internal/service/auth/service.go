package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/repository"
	"github.com/nikhilkumar-05/MediCare/pkg/auth"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
	"github.com/nikhilkumar-05/MediCare/pkg/metrics"
)

const bcryptCost = 10

type Service struct {
	accountRepo repository.AccountRepository
	jwtSvc      auth.JWTService
}

func NewService(accountRepo repository.AccountRepository, jwtSvc auth.JWTService) *Service {
	return &Service{
		accountRepo: accountRepo,
		jwtSvc:      jwtSvc,
	}
}

// Register creates an account and issues its first token pair. Doctor-role
// registrations create the default practice profile in the same transaction.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = model.RolePatient
	}
	if !model.ValidRole(role) {
		return nil, apperrors.Validation("invalid role")
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
		Role:         role,
	}

	if role == model.RoleDoctor {
		profile := &model.DoctorProfile{
			Specialization: model.DefaultSpecialization,
			HospitalName:   model.DefaultHospitalName,
		}
		if err := s.accountRepo.CreateWithProfile(ctx, account, profile); err != nil {
			return nil, fmt.Errorf("failed to create doctor account: %w", err)
		}
	} else {
		if err := s.accountRepo.Create(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
	}

	tokens, err := s.generateTokens(account)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(role).Inc()
	log.Info().Str("account_id", account.ID.String()).Str("role", role).Msg("account registered")

	return &model.AuthResponse{
		Account:      account,
		Token:        tokens.Token,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Login verifies credentials and issues a fresh token pair. The blocked flag
// is not consulted here; blocked accounts are rejected at request
// authentication instead.
func (s *Service) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		metrics.LoginFailuresTotal.Inc()
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		metrics.LoginFailuresTotal.Inc()
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	tokens, err := s.generateTokens(account)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		Account:      account,
		Token:        tokens.Token,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	accountID, err := s.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid refresh token")
	}

	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		return nil, apperrors.Unauthorized("account no longer exists")
	}

	return s.generateTokens(account)
}

// Authenticate resolves a bearer access token to exactly one non-blocked
// account.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.Account, error) {
	accountID, err := s.jwtSvc.ValidateAccessToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token")
	}

	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		return nil, apperrors.Unauthorized("account no longer exists")
	}

	if account.IsBlocked {
		return nil, apperrors.Unauthorized("account is blocked")
	}
	return account, nil
}

func (s *Service) generateTokens(account *model.Account) (*model.TokenResponse, error) {
	accessToken, err := s.jwtSvc.GenerateAccessToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtSvc.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &model.TokenResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}
