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

func repoWithAppointment(status domain.Status) *fakeRepo {
	repo := bookedRepo()

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:        "ap-1",
		ServiceID: "svc-30",
		Date:      monday,
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    string(status),
	})

	return repo
}

func TestTransitionAppointment_AdminCancel(t *testing.T) {
	repo := repoWithAppointment(domain.StatusPending)
	uc := NewTransitionAppointment(repo, nil, nil, "UTC")

	ap, err := uc.Execute(context.Background(), "ap-1", domain.StatusCancelledByAdmin)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelledByAdmin), ap.Status)
	assert.NotNil(t, ap.CancelledAt)

	// o registro continua existindo, só mudou de status
	stored, err := repo.GetAppointment(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelledByAdmin), stored.Status)
}

func TestTransitionAppointment_NotFound(t *testing.T) {
	repo := bookedRepo()
	uc := NewTransitionAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), "ghost", domain.StatusCancelledByAdmin)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestTransitionAppointment_InvalidTransition(t *testing.T) {
	repo := repoWithAppointment(domain.StatusPending)
	uc := NewTransitionAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), "ap-1", domain.StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	stored, _ := repo.GetAppointment(context.Background(), "ap-1")
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestTransitionAppointment_ConfirmThenComplete(t *testing.T) {
	repo := repoWithAppointment(domain.StatusPending)
	uc := NewTransitionAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), "ap-1", domain.StatusConfirmed)
	require.NoError(t, err)

	ap, err := uc.Execute(context.Background(), "ap-1", domain.StatusCompleted)
	require.NoError(t, err)
	assert.NotNil(t, ap.CompletedAt)
}

func TestTransitionAppointment_PersistFailure(t *testing.T) {
	repo := repoWithAppointment(domain.StatusPending)
	repo.updateErr = errors.New("connection reset")

	uc := NewTransitionAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), "ap-1", domain.StatusConfirmed)
	assert.Error(t, err)

	// write-through: falha remota não muda o estado visível
	stored, _ := repo.GetAppointment(context.Background(), "ap-1")
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestUpdateAppointment_FullReplace(t *testing.T) {
	repo := repoWithAppointment(domain.StatusPending)
	repo.addService("svc-60", 60)

	uc := NewUpdateAppointment(repo, nil, nil, "UTC")

	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:          "ap-1",
		ClientName:  "João Souza",
		ClientEmail: "joao@example.com",
		ClientPhone: "+55 11 98888-0000",
		ServiceID:   "svc-60",
		Date:        "2025-03-10",
		Time:        "14:00",
		Status:      domain.StatusConfirmed,
		Notes:       "remarcado",
	})
	require.NoError(t, err)

	assert.Equal(t, "João Souza", ap.ClientName)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.Equal(t, "14:00", ap.StartTime.Format("15:04"))
	assert.Equal(t, "15:00", ap.EndTime.Format("15:04"))
}

func TestUpdateAppointment_RejectsDoubleBooking(t *testing.T) {
	repo := repoWithAppointment(domain.StatusConfirmed) // ap-1 às 10:00

	start := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:        "ap-2",
		ServiceID: "svc-30",
		Date:      monday,
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    string(domain.StatusPending),
	})

	uc := NewUpdateAppointment(repo, nil, nil, "UTC")

	// reagendar ap-2 em cima do horário ocupado por ap-1
	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:          "ap-2",
		ClientName:  "Maria Silva",
		ClientEmail: "maria@example.com",
		ClientPhone: "+55 11 99999-0000",
		ServiceID:   "svc-30",
		Date:        "2025-03-10",
		Time:        "10:00",
		Status:      domain.StatusPending,
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	stored, _ := repo.GetAppointment(context.Background(), "ap-2")
	assert.Equal(t, "11:00", stored.StartTime.Format("15:04"))
}

func TestUpdateAppointment_OutsideBusinessHours(t *testing.T) {
	repo := repoWithAppointment(domain.StatusPending)
	uc := NewUpdateAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:          "ap-1",
		ClientName:  "Maria Silva",
		ClientEmail: "maria@example.com",
		ClientPhone: "+55 11 99999-0000",
		ServiceID:   "svc-30",
		Date:        "2025-03-10",
		Time:        "23:00",
		Status:      domain.StatusPending,
	})
	assert.True(t, httperr.IsBusiness(err, "outside_business_hours"))

	stored, _ := repo.GetAppointment(context.Background(), "ap-1")
	assert.Equal(t, "10:00", stored.StartTime.Format("15:04"))
}

func TestUpdateAppointment_KeepsOwnSlot(t *testing.T) {
	repo := repoWithAppointment(domain.StatusPending)
	uc := NewUpdateAppointment(repo, nil, nil, "UTC")

	// manter o próprio horário nunca conflita consigo mesmo
	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:          "ap-1",
		ClientName:  "Maria Silva",
		ClientEmail: "maria@example.com",
		ClientPhone: "+55 11 99999-0000",
		ServiceID:   "svc-30",
		Date:        "2025-03-10",
		Time:        "10:00",
		Status:      domain.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", ap.StartTime.Format("15:04"))
}

func TestUpdateAppointment_InvalidStatusChange(t *testing.T) {
	repo := repoWithAppointment(domain.StatusCancelledByAdmin)
	uc := NewUpdateAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:          "ap-1",
		ClientName:  "Maria Silva",
		ClientEmail: "maria@example.com",
		ClientPhone: "+55 11 99999-0000",
		ServiceID:   "svc-30",
		Date:        "2025-03-10",
		Time:        "10:00",
		Status:      domain.StatusConfirmed,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
