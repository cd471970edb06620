package schedule

import (
	"time"

	"github.com/agendly/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica uma mudança de status validada pela máquina de
// estados, registrando os timestamps de cancelamento/conclusão.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelledByAdmin, StatusCancelledByClient:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}
