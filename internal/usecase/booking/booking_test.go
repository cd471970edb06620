package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/agendly/booking-api/internal/domain/schedule"
	"github.com/agendly/booking-api/internal/models"
)

// fakeRepo guarda tudo em memória; erros podem ser injetados
// para simular falhas do banco.
type fakeRepo struct {
	services     map[string]*models.Service
	hours        map[int]*models.BusinessHours
	appointments []models.Appointment

	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[string]*models.Service{},
		hours:    map[int]*models.BusinessHours{},
	}
}

func (f *fakeRepo) addService(id string, durationMin int) {
	f.services[id] = &models.Service{
		ID:          id,
		Name:        "svc " + id,
		DurationMin: durationMin,
		Active:      true,
	}
}

func (f *fakeRepo) openWeekday(weekday int, open, closeAt string) {
	f.hours[weekday] = &models.BusinessHours{
		DayOfWeek: weekday,
		IsOpen:    true,
		OpenTime:  open,
		CloseTime: closeAt,
	}
}

func (f *fakeRepo) closeWeekday(weekday int) {
	f.hours[weekday] = &models.BusinessHours{
		DayOfWeek: weekday,
		IsOpen:    false,
	}
}

func (f *fakeRepo) GetService(_ context.Context, serviceID string) (*models.Service, error) {
	if s, ok := f.services[serviceID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetBusinessHours(_ context.Context, weekday int) (*models.BusinessHours, error) {
	if h, ok := f.hours[weekday]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) HasTimeConflict(_ context.Context, start, end time.Time, excludeID string) (bool, error) {
	for _, ap := range f.appointments {
		if excludeID != "" && ap.ID == excludeID {
			continue
		}
		if !domain.Blocks(domain.Status(ap.Status)) {
			continue
		}
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, appointmentID string) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID {
			ap := f.appointments[i]
			return &ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return f.ListAppointmentsForDay(ctx, start, end)
}
