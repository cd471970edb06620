package dto

import (
	"time"

	"github.com/agendly/booking-api/internal/models"
)

type AppointmentListDTO struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
}

func AppointmentListFromModel(ap models.Appointment) AppointmentListDTO {
	serviceName := ap.Service.Name
	if serviceName == "" {
		// serviço removido desde a criação do agendamento
		serviceName = "unknown"
	}

	return AppointmentListDTO{
		ID:          ap.ID,
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime,
		Status:      ap.Status,
		ClientName:  ap.ClientName,
		ServiceName: serviceName,
	}
}
