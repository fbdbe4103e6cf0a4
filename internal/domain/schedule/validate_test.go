package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipline/barber-booking/internal/httperr"
)

func TestValidateWindow(t *testing.T) {
	cases := []struct {
		name    string
		weekday int
		start   string
		end     string
		code    string
	}{
		{"valida", 1, "09:00", "17:00", ""},
		{"domingo", 0, "08:00", "12:00", ""},
		{"weekday negativo", -1, "09:00", "17:00", "invalid_weekday"},
		{"weekday alto", 7, "09:00", "17:00", "invalid_weekday"},
		{"inicio ilegivel", 2, "9h00", "17:00", "invalid_time_format"},
		{"fim ilegivel", 2, "09:00", "25:00", "invalid_time_format"},
		{"inicio igual ao fim", 3, "09:00", "09:00", "start_after_end"},
		{"intervalo invertido", 3, "17:00", "09:00", "start_after_end"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateWindow(tc.weekday, tc.start, tc.end)
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.code),
				"esperava %s, veio %v", tc.code, err)
		})
	}
}
