package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agendly/booking-api/internal/cache"
	domain "github.com/agendly/booking-api/internal/domain/schedule"
	"github.com/agendly/booking-api/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availCache,
	}
}

// Execute calcula os slots livres da data: expediente do dia da semana
// + agendamentos do dia, delegando a grade ao motor puro. O resultado
// vai para cache com TTL curto; qualquer escrita invalida o dia.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if cached, ok := uc.cache.Get(ctx, in.Date, in.ServiceID); ok {
		var slots []domain.TimeSlot
		if err := json.Unmarshal(cached, &slots); err == nil {
			return slots, nil
		}
	}

	durationMin := domain.DefaultSlotMinutes
	if in.ServiceID != "" {
		service, err := uc.repo.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		durationMin = service.DurationMin
	}

	weekday := int(in.Date.Weekday())

	hours, err := uc.repo.GetBusinessHours(ctx, weekday)
	if err != nil || !hours.IsOpen {
		return []domain.TimeSlot{}, nil
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.AvailableSlots(in.Date, hours, durationMin, appointments)

	if payload, err := json.Marshal(slots); err == nil {
		uc.cache.Set(ctx, in.Date, in.ServiceID, payload)
	}

	return slots, nil
}
