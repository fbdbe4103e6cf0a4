package handlers

import (
	"time"

	"github.com/clipline/barber-booking/internal/timezone"
)

// datas chegam como YYYY-MM-DD e horários como HH:mm, sempre na base
// única de tempo da aplicação
func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(),
	)
}

func parseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(),
	)
}
