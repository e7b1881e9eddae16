package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nikhilkumar-05/MediCare/internal/model"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, patient_account_id, doctor_profile_id, scheduled_at,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.PatientAccountID,
		appointment.DoctorProfileID,
		appointment.ScheduledAt,
		appointment.Status,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, patient_account_id, doctor_profile_id, scheduled_at,
			   status, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET scheduled_at = $1, status = $2, updated_at = $3
		WHERE id = $4
	`
	appointment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		appointment.ScheduledAt,
		appointment.Status,
		appointment.UpdatedAt,
		appointment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("appointment not found")
	}
	return nil
}

func (r *appointmentRepository) ListForPatient(ctx context.Context, patientAccountID uuid.UUID) ([]*model.AppointmentDetail, error) {
	query := `
		SELECT ap.id, ap.patient_account_id, ap.doctor_profile_id,
			   ap.scheduled_at, ap.status, ap.created_at, ap.updated_at,
			   a.name AS doctor_name, d.specialization, d.fee_amount,
			   d.hospital_name
		FROM appointments ap
		JOIN doctor_profiles d ON d.id = ap.doctor_profile_id
		JOIN accounts a ON a.id = d.account_id
		WHERE ap.patient_account_id = $1
		ORDER BY ap.scheduled_at DESC
	`
	var appointments []*model.AppointmentDetail
	if err := r.db.SelectContext(ctx, &appointments, query, patientAccountID); err != nil {
		return nil, fmt.Errorf("failed to list patient appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForDoctor(ctx context.Context, doctorProfileID uuid.UUID) ([]*model.AppointmentDetail, error) {
	query := `
		SELECT ap.id, ap.patient_account_id, ap.doctor_profile_id,
			   ap.scheduled_at, ap.status, ap.created_at, ap.updated_at,
			   a.name AS patient_name, a.email AS patient_email
		FROM appointments ap
		JOIN accounts a ON a.id = ap.patient_account_id
		WHERE ap.doctor_profile_id = $1
		ORDER BY ap.scheduled_at DESC
	`
	var appointments []*model.AppointmentDetail
	if err := r.db.SelectContext(ctx, &appointments, query, doctorProfileID); err != nil {
		return nil, fmt.Errorf("failed to list doctor appointments: %w", err)
	}
	return appointments, nil
}
