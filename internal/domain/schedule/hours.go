package schedule

import (
	"time"

	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/models"
)

// ParseHM projeta um horário "HH:MM" sobre a data informada,
// mantendo a location da data.
func ParseHM(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}

// ValidateHours valida o conjunto completo de business hours:
// exatamente um registro por dia da semana e open < close quando aberto.
func ValidateHours(days []models.BusinessHours) error {
	if len(days) != 7 {
		return httperr.ErrBusiness("incomplete_week")
	}

	seen := make(map[int]bool, 7)

	for _, d := range days {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return httperr.ErrBusiness("invalid_weekday")
		}
		if seen[d.DayOfWeek] {
			return httperr.ErrBusiness("duplicate_weekday")
		}
		seen[d.DayOfWeek] = true

		if !d.IsOpen {
			continue
		}

		open, err := time.Parse("15:04", d.OpenTime)
		if err != nil {
			return httperr.ErrBusiness("invalid_time_format")
		}
		closeAt, err := time.Parse("15:04", d.CloseTime)
		if err != nil {
			return httperr.ErrBusiness("invalid_time_format")
		}

		if !open.Before(closeAt) {
			return httperr.ErrBusiness("open_after_close")
		}
	}

	return nil
}

// IsWithinHours valida se o intervalo [start, end) cabe no expediente
// do dia. Registro ausente ou dia fechado nunca é erro, apenas false.
func IsWithinHours(hours *models.BusinessHours, start, end time.Time) bool {
	if hours == nil || !hours.IsOpen {
		return false
	}

	open, err := ParseHM(start, hours.OpenTime)
	if err != nil {
		return false
	}
	closeAt, err := ParseHM(start, hours.CloseTime)
	if err != nil {
		return false
	}

	return !start.Before(open) && !end.After(closeAt)
}
