package feedback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/repository"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
	"github.com/nikhilkumar-05/MediCare/pkg/metrics"
)

type Service struct {
	repo       repository.FeedbackRepository
	doctorRepo repository.DoctorRepository
}

func NewService(repo repository.FeedbackRepository, doctorRepo repository.DoctorRepository) *Service {
	return &Service{
		repo:       repo,
		doctorRepo: doctorRepo,
	}
}

// Create stores an immutable feedback entry for an existing doctor. Ratings
// outside [1,5] are rejected, not clamped.
func (s *Service) Create(ctx context.Context, caller *model.Account, req *model.CreateFeedbackRequest) (*model.Feedback, error) {
	if req.Rating < model.MinFeedbackRating || req.Rating > model.MaxFeedbackRating {
		return nil, apperrors.Validation(fmt.Sprintf("rating must be between %d and %d", model.MinFeedbackRating, model.MaxFeedbackRating))
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, apperrors.Validation("comment must not be empty")
	}

	doctor, err := s.doctorRepo.Get(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}

	entry := &model.Feedback{
		PatientAccountID: caller.ID,
		DoctorProfileID:  doctor.ID,
		Rating:           req.Rating,
		Comment:          req.Comment,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	metrics.FeedbackSubmittedTotal.Inc()
	return entry, nil
}

// ListMine returns feedback newest-first: entries the caller authored for
// patient callers, entries targeting the caller's profile for doctor callers.
// Non-patient callers without a doctor profile get a NotFound.
func (s *Service) ListMine(ctx context.Context, caller *model.Account) ([]*model.FeedbackDetail, error) {
	if caller.Role == model.RolePatient {
		entries, err := s.repo.ListForPatient(ctx, caller.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list feedback: %w", err)
		}
		return entries, nil
	}

	profile, err := s.doctorRepo.GetByAccountID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("doctor profile")
		}
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}

	entries, err := s.repo.ListForDoctor(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return entries, nil
}
