package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nikhilkumar-05/MediCare/internal/model"
)

func (r *doctorRepository) Create(ctx context.Context, profile *model.DoctorProfile) error {
	query := `
		INSERT INTO doctor_profiles (
			id, account_id, specialization, experience_years,
			fee_amount, hospital_name, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.AccountID,
		profile.Specialization,
		profile.ExperienceYears,
		profile.FeeAmount,
		profile.HospitalName,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create doctor profile: %w", err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.DoctorProfile, error) {
	query := `
		SELECT id, account_id, specialization, experience_years,
			   fee_amount, hospital_name, created_at, updated_at
		FROM doctor_profiles
		WHERE id = $1
	`
	var profile model.DoctorProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}
	return &profile, nil
}

func (r *doctorRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*model.DoctorProfile, error) {
	query := `
		SELECT id, account_id, specialization, experience_years,
			   fee_amount, hospital_name, created_at, updated_at
		FROM doctor_profiles
		WHERE account_id = $1
	`
	var profile model.DoctorProfile
	if err := r.db.GetContext(ctx, &profile, query, accountID); err != nil {
		return nil, fmt.Errorf("failed to get doctor profile by account: %w", err)
	}
	return &profile, nil
}

func (r *doctorRepository) Update(ctx context.Context, profile *model.DoctorProfile) error {
	query := `
		UPDATE doctor_profiles
		SET specialization = $1, experience_years = $2, fee_amount = $3,
			hospital_name = $4, updated_at = $5
		WHERE id = $6
	`
	profile.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		profile.Specialization,
		profile.ExperienceYears,
		profile.FeeAmount,
		profile.HospitalName,
		profile.UpdatedAt,
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update doctor profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("doctor profile not found")
	}
	return nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.DoctorListing, error) {
	query := `
		SELECT d.id, d.account_id, d.specialization, d.experience_years,
			   d.fee_amount, d.hospital_name, d.created_at, d.updated_at,
			   a.name AS doctor_name, a.email AS doctor_email
		FROM doctor_profiles d
		JOIN accounts a ON a.id = d.account_id
		ORDER BY a.name ASC
	`
	var listings []*model.DoctorListing
	if err := r.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return listings, nil
}
