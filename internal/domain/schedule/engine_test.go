package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/clipline/barber-booking/internal/domain/appointment"
	"github.com/clipline/barber-booking/internal/models"
)

// 2026-03-02 é uma segunda-feira
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type fakeHours struct {
	windows []models.WorkHours
}

func (f *fakeHours) ActiveWindows(
	_ context.Context,
	barberID uint,
	weekday int,
) ([]models.WorkHours, error) {
	var out []models.WorkHours
	for _, w := range f.windows {
		if w.BarberID == barberID && w.Weekday == weekday && w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeAppointments struct {
	appointments []models.Appointment
}

func (f *fakeAppointments) AppointmentsForDay(
	_ context.Context,
	barberID uint,
	day time.Time,
) ([]models.Appointment, error) {
	end := day.Add(24 * time.Hour)
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && !ap.StartTime.Before(day) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func window(barberID uint, weekday int, start, end string, active bool) models.WorkHours {
	return models.WorkHours{
		BarberID:  barberID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Active:    active,
	}
}

func booked(barberID uint, start time.Time, durationMin int, status domain.Status) models.Appointment {
	return models.Appointment{
		BarberID:  barberID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(durationMin) * time.Minute),
		Status:    string(status),
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func newEngine(windows []models.WorkHours, appointments []models.Appointment) *Engine {
	return NewEngine(
		&fakeHours{windows: windows},
		&fakeAppointments{appointments: appointments},
	)
}

func TestAvailableSlots_NoWindowsForDay(t *testing.T) {
	e := newEngine(nil, nil)

	slots, err := e.AvailableSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)

	ok, err := e.IsAvailable(context.Background(), 1, at(10, 0), 30)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailableSlots_FullDayCoverage(t *testing.T) {
	e := newEngine(
		[]models.WorkHours{window(1, 1, "09:00", "17:00", true)},
		nil,
	)

	slots, err := e.AvailableSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	// 09:00 até 16:30: o último slot termina exatamente às 17:00
	require.Len(t, slots, 16)
	assert.Equal(t, at(9, 0), slots[0])
	assert.Equal(t, at(16, 30), slots[15])
}

func TestAvailableSlots_ExcludesBookedSlot(t *testing.T) {
	e := newEngine(
		[]models.WorkHours{window(1, 1, "09:00", "17:00", true)},
		[]models.Appointment{
			booked(1, at(9, 30), 30, domain.StatusPending),
			booked(1, at(10, 0), 30, domain.StatusCancelled), // cancelado não bloqueia
		},
	)

	slots, err := e.AvailableSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	require.Len(t, slots, 15)
	assert.NotContains(t, slots, at(9, 30))
	assert.Contains(t, slots, at(10, 0))
}

func TestAvailableSlots_OverlapBlocksAdjacentSlots(t *testing.T) {
	// atendimento de 45min às 09:15 invade os slots de 09:00 e 09:30
	e := newEngine(
		[]models.WorkHours{window(1, 1, "09:00", "11:00", true)},
		[]models.Appointment{booked(1, at(9, 15), 45, domain.StatusPending)},
	)

	slots, err := e.AvailableSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	assert.NotContains(t, slots, at(9, 0))
	assert.NotContains(t, slots, at(9, 30))
	assert.Contains(t, slots, at(10, 0))
	assert.Contains(t, slots, at(10, 30))
}

func TestAvailableSlots_InactiveWindowContributesNothing(t *testing.T) {
	e := newEngine(
		[]models.WorkHours{window(1, 1, "18:00", "20:00", false)},
		nil,
	)

	slots, err := e.AvailableSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)

	ok, err := e.IsAvailable(context.Background(), 1, at(18, 30), 30)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAvailable_WindowBoundary(t *testing.T) {
	e := newEngine(
		[]models.WorkHours{window(1, 1, "09:00", "17:00", true)},
		nil,
	)

	// 16:45 + 30min estoura o fim da janela
	ok, err := e.IsAvailable(context.Background(), 1, at(16, 45), 30)
	require.NoError(t, err)
	assert.False(t, ok)

	// 16:30 + 30min termina exatamente às 17:00
	ok, err = e.IsAvailable(context.Background(), 1, at(16, 30), 30)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAvailable_NoStitchingAcrossWindows(t *testing.T) {
	// 60min a partir das 12:30 não cabe em nenhuma janela isolada
	e := newEngine(
		[]models.WorkHours{
			window(1, 1, "09:00", "13:00", true),
			window(1, 1, "13:00", "18:00", true),
		},
		nil,
	)

	ok, err := e.IsAvailable(context.Background(), 1, at(12, 30), 60)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailableSlots_SplitShift(t *testing.T) {
	// janelas fornecidas fora de ordem; saída deve ser crescente
	e := newEngine(
		[]models.WorkHours{
			window(1, 1, "14:00", "18:00", true),
			window(1, 1, "09:00", "13:00", true),
		},
		nil,
	)

	slots, err := e.AvailableSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	require.Len(t, slots, 16)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]), "slots fora de ordem em %d", i)
	}

	// nenhum slot começa dentro do intervalo 13:00-14:00
	for _, s := range slots {
		assert.False(t, !s.Before(at(13, 0)) && s.Before(at(14, 0)),
			"slot %v dentro do intervalo sem expediente", s)
	}
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	e := newEngine(
		[]models.WorkHours{window(1, 1, "09:00", "12:00", true)},
		[]models.Appointment{booked(1, at(10, 0), 30, domain.StatusPending)},
	)

	first, err := e.AvailableSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	second, err := e.AvailableSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAvailableSlots_DefaultDuration(t *testing.T) {
	e := newEngine(
		[]models.WorkHours{window(1, 1, "09:00", "10:00", true)},
		nil,
	)

	slots, err := e.AvailableSlots(context.Background(), 1, monday, 0)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{at(9, 0), at(9, 30)}, slots)
}

func TestAvailableSlots_StepAlignment(t *testing.T) {
	// passos de 50min a partir das 09:00: 09:00 e 09:50; 10:40+50 estoura 11:00
	e := newEngine(
		[]models.WorkHours{window(1, 1, "09:00", "11:00", true)},
		nil,
	)

	slots, err := e.AvailableSlots(context.Background(), 1, monday, 50)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{at(9, 0), at(9, 50)}, slots)
}
