package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/repository"
	apperrors "github.com/nikhilkumar-05/MediCare/pkg/errors"
	"github.com/nikhilkumar-05/MediCare/pkg/metrics"
)

type Service struct {
	repo       repository.AppointmentRepository
	doctorRepo repository.DoctorRepository
}

func NewService(repo repository.AppointmentRepository, doctorRepo repository.DoctorRepository) *Service {
	return &Service{
		repo:       repo,
		doctorRepo: doctorRepo,
	}
}

// Book creates a pending appointment for the patient with the target doctor.
// There is no conflict check: the same doctor and time can be booked twice.
func (s *Service) Book(ctx context.Context, patient *model.Account, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	doctor, err := s.doctorRepo.Get(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}

	appointment := &model.Appointment{
		PatientAccountID: patient.ID,
		DoctorProfileID:  doctor.ID,
		ScheduledAt:      req.ScheduledAt,
		Status:           model.AppointmentStatusPending,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	metrics.AppointmentsBookedTotal.Inc()
	return appointment, nil
}

// ListMine returns the caller's appointments: patients see their own bookings
// joined with the doctor's details, doctors see the bookings targeting their
// profile joined with the patient's name. Any other role sees an empty list,
// as does a doctor without a profile.
func (s *Service) ListMine(ctx context.Context, account *model.Account) ([]*model.AppointmentDetail, error) {
	switch account.Role {
	case model.RolePatient:
		appointments, err := s.repo.ListForPatient(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list appointments: %w", err)
		}
		return appointments, nil

	case model.RoleDoctor:
		profile, err := s.doctorRepo.GetByAccountID(ctx, account.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return []*model.AppointmentDetail{}, nil
			}
			return nil, fmt.Errorf("failed to get doctor profile: %w", err)
		}
		appointments, err := s.repo.ListForDoctor(ctx, profile.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list appointments: %w", err)
		}
		return appointments, nil

	default:
		return []*model.AppointmentDetail{}, nil
	}
}

// UpdateStatus moves an appointment through its lifecycle. Illegal transitions
// are rejected; completed and cancelled are terminal.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) (*model.Appointment, error) {
	if !model.ValidAppointmentStatus(status) {
		return nil, apperrors.Validation(fmt.Sprintf("invalid appointment status %q", status))
	}

	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("appointment")
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, apperrors.Validation(fmt.Sprintf("cannot transition appointment from %s to %s", appointment.Status, status))
	}

	appointment.Status = status
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	metrics.AppointmentTransitionsTotal.WithLabelValues(string(status)).Inc()
	return appointment, nil
}
