package schedule

import (
	"context"
	"time"

	"github.com/agendly/booking-api/internal/models"
)

type AvailabilityInput struct {
	ServiceID string
	Date      time.Time
}

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID string,
	) (*models.Service, error)

	// -------- Business hours --------
	GetBusinessHours(
		ctx context.Context,
		weekday int,
	) (*models.BusinessHours, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// excludeID ignora o próprio agendamento em reagendamentos
	HasTimeConflict(
		ctx context.Context,
		start time.Time,
		end time.Time,
		excludeID string,
	) (bool, error)

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability / listing --------
	ListAppointmentsForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
