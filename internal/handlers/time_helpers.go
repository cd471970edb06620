package handlers

import (
	"time"

	"github.com/agendly/booking-api/internal/timezone"
)

// parseDate interpreta YYYY-MM-DD na timezone configurada do negócio.
func parseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}
