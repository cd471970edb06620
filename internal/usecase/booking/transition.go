package booking

import (
	"context"

	"github.com/agendly/booking-api/internal/audit"
	"github.com/agendly/booking-api/internal/cache"
	domain "github.com/agendly/booking-api/internal/domain/schedule"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/models"
	"github.com/agendly/booking-api/internal/timezone"
)

type TransitionAppointment struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	tz    string
}

func NewTransitionAppointment(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	audit *audit.Dispatcher,
	tz string,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		cache: availCache,
		audit: audit,
		tz:    tz,
	}
}

// Execute lê o agendamento, valida a transição na máquina de estados e
// persiste. O "delete" do dashboard é uma transição para
// cancelled_by_admin, nunca remoção.
func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	to domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, ap.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
