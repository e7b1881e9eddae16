package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application-level counters, registered on the default registry and exposed
// through the health metrics endpoint.
var (
	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medicare_registrations_total",
			Help: "Total number of account registrations by role",
		},
		[]string{"role"},
	)

	LoginFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "medicare_login_failures_total",
			Help: "Total number of failed login attempts",
		},
	)

	AppointmentsBookedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "medicare_appointments_booked_total",
			Help: "Total number of appointments booked",
		},
	)

	AppointmentTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medicare_appointment_transitions_total",
			Help: "Total number of appointment status transitions by target status",
		},
		[]string{"status"},
	)

	MedicalRecordsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "medicare_medical_records_created_total",
			Help: "Total number of medical records created",
		},
	)

	FeedbackSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "medicare_feedback_submitted_total",
			Help: "Total number of feedback entries submitted",
		},
	)
)
