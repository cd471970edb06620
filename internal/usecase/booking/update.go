package booking

import (
	"context"
	"time"

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

// Substituição integral do registro: contato, serviço, horário,
// status e notas vêm sempre completos.
type UpdateAppointmentInput struct {
	ID string

	ClientName  string
	ClientEmail string
	ClientPhone string

	ServiceID string

	Date string // YYYY-MM-DD
	Time string // HH:MM

	Status domain.Status
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	tz    string
}

func NewUpdateAppointment(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	audit *audit.Dispatcher,
	tz string,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		cache: availCache,
		audit: audit,
		tz:    tz,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

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

	// reagendamento segue as mesmas regras da criação: dentro do
	// expediente e sem conflito com outros agendamentos ativos
	weekday := int(start.Weekday())
	hours, err := uc.repo.GetBusinessHours(ctx, weekday)
	if err != nil || !domain.IsWithinHours(hours, start, end) {
		return nil, httperr.ErrBusiness("outside_business_hours")
	}

	conflict, err := uc.repo.HasTimeConflict(ctx, start, end, ap.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	if in.Status != domain.Status(ap.Status) {
		now := timezone.NowIn(uc.tz)
		if err := domain.Transition(ap, in.Status, now); err != nil {
			return nil, err
		}
	}

	previousDate := ap.Date

	ap.ClientName = in.ClientName
	ap.ClientEmail = in.ClientEmail
	ap.ClientPhone = in.ClientPhone
	ap.ServiceID = service.ID
	ap.Date = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	ap.StartTime = start
	ap.EndTime = end
	ap.Notes = in.Notes

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, previousDate)
	uc.cache.InvalidateDay(ctx, ap.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
