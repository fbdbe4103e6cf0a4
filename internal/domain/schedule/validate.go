package schedule

import (
	"time"

	"github.com/clipline/barber-booking/internal/httperr"
)

// ValidateWindow aplica as regras de escrita das janelas de expediente.
// Janela inválida nunca deve chegar ao banco; o motor assume isso.
func ValidateWindow(weekday int, startTime, endTime string) error {
	if weekday < 0 || weekday > 6 {
		return httperr.ErrBusiness("invalid_weekday")
	}

	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time_format")
	}

	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time_format")
	}

	if !start.Before(end) {
		return httperr.ErrBusiness("start_after_end")
	}

	return nil
}
