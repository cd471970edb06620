package dto

import "github.com/agendly/booking-api/internal/models"

// Wire shape dos business hours (snake_case), mapeado explicitamente
// de/para o modelo na borda da API.
type BusinessHoursDTO struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

func BusinessHoursFromModel(m models.BusinessHours) BusinessHoursDTO {
	return BusinessHoursDTO{
		DayOfWeek: m.DayOfWeek,
		IsOpen:    m.IsOpen,
		OpenTime:  m.OpenTime,
		CloseTime: m.CloseTime,
	}
}

func BusinessHoursListFromModel(ms []models.BusinessHours) []BusinessHoursDTO {
	out := make([]BusinessHoursDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, BusinessHoursFromModel(m))
	}
	return out
}

func (d BusinessHoursDTO) ToModel() models.BusinessHours {
	return models.BusinessHours{
		DayOfWeek: d.DayOfWeek,
		IsOpen:    d.IsOpen,
		OpenTime:  d.OpenTime,
		CloseTime: d.CloseTime,
	}
}

func BusinessHoursListToModel(ds []BusinessHoursDTO) []models.BusinessHours {
	out := make([]models.BusinessHours, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ToModel())
	}
	return out
}
