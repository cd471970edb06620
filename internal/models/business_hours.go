package models

import "time"

// Um registro por dia da semana (0 = domingo ... 6 = sábado)
type BusinessHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayOfWeek int  `gorm:"uniqueIndex;not null" json:"day_of_week"`
	IsOpen    bool `json:"is_open"`

	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
