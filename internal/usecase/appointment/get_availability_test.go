package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipline/barber-booking/internal/cache"
	domain "github.com/clipline/barber-booking/internal/domain/appointment"
	"github.com/clipline/barber-booking/internal/domain/schedule"
	"github.com/clipline/barber-booking/internal/httperr"
	"github.com/clipline/barber-booking/internal/models"
)

func newAvailabilityUC(repo *fakeRepo, windows []models.WorkHours) *GetAvailability {
	engine := schedule.NewEngine(&fakeWindows{windows: windows}, fakeBusy{})
	return NewGetAvailability(repo, engine, cache.NewSlotsCache(""))
}

func TestGetAvailability_MapsSlotsToClockStrings(t *testing.T) {
	repo := baseRepo()
	repo.service.DurationMin = 60

	uc := newAvailabilityUC(repo, []models.WorkHours{
		{BarberID: 2, Active: true, StartTime: "09:00", EndTime: "12:00"},
	})

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		ServiceID:    7,
		Date:         time.Date(2031, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, slots, 3)
	assert.Equal(t, domain.TimeSlot{Start: "09:00", End: "10:00"}, slots[0])
	assert.Equal(t, domain.TimeSlot{Start: "10:00", End: "11:00"}, slots[1])
	assert.Equal(t, domain.TimeSlot{Start: "11:00", End: "12:00"}, slots[2])
}

func TestGetAvailability_UnknownService(t *testing.T) {
	uc := newAvailabilityUC(baseRepo(), nil)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		ServiceID:    99,
		Date:         time.Date(2031, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetAvailability_EmptyDayIsNotNil(t *testing.T) {
	uc := newAvailabilityUC(baseRepo(), nil)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		ServiceID:    7,
		Date:         time.Date(2031, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}
