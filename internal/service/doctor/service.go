package doctor

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/repository"
	"github.com/nikhilkumar-05/MediCare/pkg/cache"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
)

const doctorListCacheKey = "doctors:list"

type Service struct {
	doctorRepo  repository.DoctorRepository
	accountRepo repository.AccountRepository
	cache       cache.Cache
	cacheTTL    time.Duration
}

func NewService(doctorRepo repository.DoctorRepository, accountRepo repository.AccountRepository, c cache.Cache, cacheTTL time.Duration) *Service {
	return &Service{
		doctorRepo:  doctorRepo,
		accountRepo: accountRepo,
		cache:       c,
		cacheTTL:    cacheTTL,
	}
}

// ListDoctors returns the public doctor directory, served from cache when
// possible.
func (s *Service) ListDoctors(ctx context.Context) ([]*model.DoctorListing, error) {
	if data, ok := s.cache.Get(ctx, doctorListCacheKey); ok {
		var listings []*model.DoctorListing
		if err := json.Unmarshal(data, &listings); err == nil {
			return listings, nil
		}
		log.Warn().Msg("stale doctor directory cache entry, refetching")
	}

	listings, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	if data, err := json.Marshal(listings); err == nil {
		s.cache.Set(ctx, doctorListCacheKey, data, s.cacheTTL)
	}
	return listings, nil
}

// GetOwnProfile returns the caller's profile view. Callers without a doctor
// profile get a name-only payload.
func (s *Service) GetOwnProfile(ctx context.Context, account *model.Account) (*model.ProfileResponse, error) {
	profile, err := s.doctorRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &model.ProfileResponse{Name: account.Name}, nil
		}
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}

	return &model.ProfileResponse{
		Name:            account.Name,
		Specialization:  profile.Specialization,
		ExperienceYears: profile.ExperienceYears,
		FeeAmount:       profile.FeeAmount,
		HospitalName:    profile.HospitalName,
	}, nil
}

// UpdateOwnProfile updates the account name and, for doctor-role callers,
// upserts the practice profile. A doctor who registered before profiles were
// backfilled gets one created here (onboarding path).
func (s *Service) UpdateOwnProfile(ctx context.Context, account *model.Account, req *model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	if req.ExperienceYears != nil && *req.ExperienceYears < 0 {
		return nil, apperrors.Validation("experience_years must not be negative")
	}
	if req.FeeAmount != nil && *req.FeeAmount < 0 {
		return nil, apperrors.Validation("fee_amount must not be negative")
	}

	if req.Name != "" && req.Name != account.Name {
		account.Name = req.Name
		if err := s.accountRepo.Update(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to update account: %w", err)
		}
	}

	profile, err := s.doctorRepo.GetByAccountID(ctx, account.ID)
	switch {
	case err == nil:
		if req.Specialization != "" {
			profile.Specialization = req.Specialization
		}
		if req.ExperienceYears != nil {
			profile.ExperienceYears = *req.ExperienceYears
		}
		if req.FeeAmount != nil {
			profile.FeeAmount = *req.FeeAmount
		}
		if req.HospitalName != "" {
			profile.HospitalName = req.HospitalName
		}
		if err := s.doctorRepo.Update(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to update doctor profile: %w", err)
		}

	case errors.Is(err, sql.ErrNoRows) && account.Role == model.RoleDoctor:
		profile = &model.DoctorProfile{
			AccountID:      account.ID,
			Specialization: model.DefaultSpecialization,
			HospitalName:   model.DefaultHospitalName,
		}
		if req.Specialization != "" {
			profile.Specialization = req.Specialization
		}
		if req.ExperienceYears != nil {
			profile.ExperienceYears = *req.ExperienceYears
		}
		if req.FeeAmount != nil {
			profile.FeeAmount = *req.FeeAmount
		}
		if req.HospitalName != "" {
			profile.HospitalName = req.HospitalName
		}
		if err := s.doctorRepo.Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to create doctor profile: %w", err)
		}

	case errors.Is(err, sql.ErrNoRows):
		// Non-doctor caller: only the name is updatable.
		return &model.ProfileResponse{Name: account.Name}, nil

	default:
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}

	s.cache.Delete(ctx, doctorListCacheKey)

	return &model.ProfileResponse{
		Name:            account.Name,
		Specialization:  profile.Specialization,
		ExperienceYears: profile.ExperienceYears,
		FeeAmount:       profile.FeeAmount,
		HospitalName:    profile.HospitalName,
	}, nil
}

// InvalidateDirectory drops the cached doctor listing. Called after doctor
// accounts are created outside this service.
func (s *Service) InvalidateDirectory(ctx context.Context) {
	s.cache.Delete(ctx, doctorListCacheKey)
}
