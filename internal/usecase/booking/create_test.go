package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendly/booking-api/internal/domain/schedule"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/models"
)

func bookedRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.openWeekday(1, "09:00", "17:00")
	repo.addService("svc-30", 30)
	return repo
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientName:  "Maria Silva",
		ClientEmail: "maria@example.com",
		ClientPhone: "+55 11 99999-0000",
		ServiceID:   "svc-30",
		Date:        "2025-03-10",
		Time:        "10:00",
		Notes:       "primeira visita",
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := bookedRepo()
	uc := NewCreateAppointment(repo, nil, nil, "UTC")

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "10:00", ap.StartTime.Format("15:04"))
	assert.Equal(t, "10:30", ap.EndTime.Format("15:04"))
	assert.Equal(t, "2025-03-10", ap.Date.Format("2006-01-02"))

	require.Len(t, repo.appointments, 1)
	assert.Equal(t, ap.ID, repo.appointments[0].ID)
}

func TestCreateAppointment_InvalidDateTime(t *testing.T) {
	repo := bookedRepo()
	uc := NewCreateAppointment(repo, nil, nil, "UTC")

	in := validInput()
	in.Time = "25:00"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	assert.Empty(t, repo.appointments)
}

func TestCreateAppointment_UnknownService(t *testing.T) {
	repo := bookedRepo()
	uc := NewCreateAppointment(repo, nil, nil, "UTC")

	in := validInput()
	in.ServiceID = "missing"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	assert.Empty(t, repo.appointments)
}

func TestCreateAppointment_OutsideBusinessHours(t *testing.T) {
	repo := bookedRepo()
	uc := NewCreateAppointment(repo, nil, nil, "UTC")

	in := validInput()
	in.Time = "18:00"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_business_hours"))
	assert.Empty(t, repo.appointments)
}

func TestCreateAppointment_ClosedWeekday(t *testing.T) {
	repo := bookedRepo()
	repo.closeWeekday(0)
	uc := NewCreateAppointment(repo, nil, nil, "UTC")

	in := validInput()
	in.Date = "2025-03-09" // domingo

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_business_hours"))
}

func TestCreateAppointment_TimeConflict(t *testing.T) {
	repo := bookedRepo()

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:        "existing",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    string(domain.StatusPending),
	})

	uc := NewCreateAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointment_SlotFreedByCancellation(t *testing.T) {
	repo := bookedRepo()

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:        "cancelled",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    string(domain.StatusCancelledByAdmin),
	})

	uc := NewCreateAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestCreateAppointment_PersistFailureLeavesStateUnchanged(t *testing.T) {
	repo := bookedRepo()
	repo.createErr = errors.New("connection reset")

	uc := NewCreateAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), validInput())
	assert.Error(t, err)
	assert.Empty(t, repo.appointments)
}
