package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nikhilkumar-05/MediCare/internal/model"
)

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	query := `
		INSERT INTO feedback (
			id, patient_account_id, doctor_profile_id, rating,
			comment, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	feedback.ID = uuid.New()
	feedback.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		feedback.ID,
		feedback.PatientAccountID,
		feedback.DoctorProfileID,
		feedback.Rating,
		feedback.Comment,
		feedback.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepository) ListForPatient(ctx context.Context, patientAccountID uuid.UUID) ([]*model.FeedbackDetail, error) {
	query := `
		SELECT f.id, f.patient_account_id, f.doctor_profile_id, f.rating,
			   f.comment, f.created_at,
			   a.name AS doctor_name
		FROM feedback f
		JOIN doctor_profiles d ON d.id = f.doctor_profile_id
		JOIN accounts a ON a.id = d.account_id
		WHERE f.patient_account_id = $1
		ORDER BY f.created_at DESC
	`
	var entries []*model.FeedbackDetail
	if err := r.db.SelectContext(ctx, &entries, query, patientAccountID); err != nil {
		return nil, fmt.Errorf("failed to list patient feedback: %w", err)
	}
	return entries, nil
}

func (r *feedbackRepository) ListForDoctor(ctx context.Context, doctorProfileID uuid.UUID) ([]*model.FeedbackDetail, error) {
	query := `
		SELECT f.id, f.patient_account_id, f.doctor_profile_id, f.rating,
			   f.comment, f.created_at,
			   a.name AS patient_name
		FROM feedback f
		JOIN accounts a ON a.id = f.patient_account_id
		WHERE f.doctor_profile_id = $1
		ORDER BY f.created_at DESC
	`
	var entries []*model.FeedbackDetail
	if err := r.db.SelectContext(ctx, &entries, query, doctorProfileID); err != nil {
		return nil, fmt.Errorf("failed to list doctor feedback: %w", err)
	}
	return entries, nil
}
