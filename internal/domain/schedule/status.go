package schedule

import "github.com/agendly/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending           Status = "pending"
	StatusConfirmed         Status = "confirmed"
	StatusCompleted         Status = "completed"
	StatusCancelledByAdmin  Status = "cancelled_by_admin"
	StatusCancelledByClient Status = "cancelled_by_client"
	StatusNoShow            Status = "no_show"
)

// transições permitidas; estados ausentes do mapa são terminais
var transitions = map[Status][]Status{
	StatusPending: {
		StatusConfirmed,
		StatusCancelledByAdmin,
		StatusCancelledByClient,
	},
	StatusConfirmed: {
		StatusCompleted,
		StatusCancelledByAdmin,
		StatusNoShow,
	},
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelledByAdmin, StatusCancelledByClient, StatusNoShow:
		return true
	}
	return false
}

func IsTerminal(s Status) bool {
	return IsValid(s) && len(transitions[s]) == 0
}

// Blocks informa se um agendamento neste status ocupa o horário.
// Cancelados e no-show liberam o slot.
func Blocks(s Status) bool {
	switch s {
	case StatusCancelledByAdmin, StatusCancelledByClient, StatusNoShow:
		return false
	}
	return true
}

// ===============================
// Validations
// ===============================

func CanTransition(from Status, to Status) error {
	if !IsValid(from) || !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}

	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_state")
}

func InitialStatus() Status {
	return StatusPending
}
