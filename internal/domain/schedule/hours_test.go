package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/models"
)

func fullWeek() []models.BusinessHours {
	days := make([]models.BusinessHours, 0, 7)
	for weekday := 0; weekday <= 6; weekday++ {
		days = append(days, models.BusinessHours{
			DayOfWeek: weekday,
			IsOpen:    weekday >= 1 && weekday <= 5,
			OpenTime:  "09:00",
			CloseTime: "17:00",
		})
	}
	return days
}

func TestValidateHours_OK(t *testing.T) {
	assert.NoError(t, ValidateHours(fullWeek()))
}

func TestValidateHours_IncompleteWeek(t *testing.T) {
	err := ValidateHours(fullWeek()[:6])
	assert.True(t, httperr.IsBusiness(err, "incomplete_week"))
}

func TestValidateHours_DuplicateWeekday(t *testing.T) {
	days := fullWeek()
	days[6].DayOfWeek = 1

	err := ValidateHours(days)
	assert.True(t, httperr.IsBusiness(err, "duplicate_weekday"))
}

func TestValidateHours_InvalidWeekday(t *testing.T) {
	days := fullWeek()
	days[0].DayOfWeek = 7

	err := ValidateHours(days)
	assert.True(t, httperr.IsBusiness(err, "invalid_weekday"))
}

func TestValidateHours_OpenAfterClose(t *testing.T) {
	days := fullWeek()
	days[1].OpenTime = "18:00"

	err := ValidateHours(days)
	assert.True(t, httperr.IsBusiness(err, "open_after_close"))

	days[1].OpenTime = "17:00" // igual também é inválido
	err = ValidateHours(days)
	assert.True(t, httperr.IsBusiness(err, "open_after_close"))
}

func TestValidateHours_BadFormat(t *testing.T) {
	days := fullWeek()
	days[2].CloseTime = "5pm"

	err := ValidateHours(days)
	assert.True(t, httperr.IsBusiness(err, "invalid_time_format"))
}

func TestValidateHours_ClosedDaySkipsTimes(t *testing.T) {
	days := fullWeek()
	days[0].OpenTime = ""
	days[0].CloseTime = ""

	assert.NoError(t, ValidateHours(days))
}

func TestParseHM(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	got, err := ParseHM(date, "14:30")
	require.NoError(t, err)

	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, date.Year(), got.Year())
	assert.Equal(t, loc, got.Location())

	_, err = ParseHM(date, "25:99")
	assert.Error(t, err)
}

func TestIsWithinHours(t *testing.T) {
	hours := openDay("09:00", "17:00")

	start, _ := ParseHM(testDate, "09:00")
	end, _ := ParseHM(testDate, "09:30")
	assert.True(t, IsWithinHours(hours, start, end))

	start, _ = ParseHM(testDate, "16:45")
	end, _ = ParseHM(testDate, "17:15")
	assert.False(t, IsWithinHours(hours, start, end))

	start, _ = ParseHM(testDate, "08:30")
	end, _ = ParseHM(testDate, "09:00")
	assert.False(t, IsWithinHours(hours, start, end))

	closed := &models.BusinessHours{IsOpen: false, OpenTime: "09:00", CloseTime: "17:00"}
	start, _ = ParseHM(testDate, "10:00")
	end, _ = ParseHM(testDate, "10:30")
	assert.False(t, IsWithinHours(closed, start, end))

	assert.False(t, IsWithinHours(nil, start, end))
}
