package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/nikhilkumar-05/MediCare/internal/model"
)

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (
			id, patient_account_id, doctor_account_id, diagnosis,
			prescription, attachments, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	record.ID = uuid.New()
	record.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.PatientAccountID,
		record.DoctorAccountID,
		record.Diagnosis,
		record.Prescription,
		pq.Array([]string(record.Attachments)),
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

func (r *medicalRecordRepository) ListForPatient(ctx context.Context, patientAccountID uuid.UUID) ([]*model.MedicalRecordDetail, error) {
	query := `
		SELECT m.id, m.patient_account_id, m.doctor_account_id, m.diagnosis,
			   m.prescription, m.attachments, m.created_at,
			   doc.name AS doctor_name,
			   COALESCE(dp.specialization, '') AS specialization,
			   pat.name AS patient_name, pat.email AS patient_email
		FROM medical_records m
		JOIN accounts doc ON doc.id = m.doctor_account_id
		LEFT JOIN doctor_profiles dp ON dp.account_id = m.doctor_account_id
		JOIN accounts pat ON pat.id = m.patient_account_id
		WHERE m.patient_account_id = $1
		ORDER BY m.created_at DESC
	`
	var records []*model.MedicalRecordDetail
	if err := r.db.SelectContext(ctx, &records, query, patientAccountID); err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}
