package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agendly/booking-api/internal/audit"
	"github.com/agendly/booking-api/internal/cache"
	domain "github.com/agendly/booking-api/internal/domain/schedule"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/models"
	"github.com/agendly/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	ServiceID string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	tz    string
}

func NewCreateAppointment(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	audit *audit.Dispatcher,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: availCache,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute cria o agendamento com status pending. Nenhum estado derivado
// muda antes do banco confirmar; falha em qualquer passo deixa tudo
// como estava (write-through estrito).
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	loc := timezone.Location(uc.tz)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	weekday := int(start.Weekday())
	hours, err := uc.repo.GetBusinessHours(ctx, weekday)
	if err != nil || !domain.IsWithinHours(hours, start, end) {
		return nil, httperr.ErrBusiness("outside_business_hours")
	}

	conflict, err := uc.repo.HasTimeConflict(ctx, start, end, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)

	ap := &models.Appointment{
		ID:          uuid.NewString(),
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		ServiceID:   service.ID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, date)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
