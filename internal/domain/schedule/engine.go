// Package schedule computa a disponibilidade de um barbeiro a partir das
// janelas recorrentes de expediente e dos agendamentos do dia. O motor é
// puro: só lê dos stores e nunca escreve.
package schedule

import (
	"context"
	"sort"
	"time"

	domain "github.com/clipline/barber-booking/internal/domain/appointment"
	"github.com/clipline/barber-booking/internal/models"
)

const DefaultSlotMinutes = 30

type Engine struct {
	hours        WorkHoursStore
	appointments AppointmentStore
}

func NewEngine(hours WorkHoursStore, appointments AppointmentStore) *Engine {
	return &Engine{
		hours:        hours,
		appointments: appointments,
	}
}

// IsAvailable responde apenas "este horário cabe no expediente?".
// Conflito com outros agendamentos é checado na hora de gravar, não aqui.
func (e *Engine) IsAvailable(
	ctx context.Context,
	barberID uint,
	start time.Time,
	durationMin int,
) (bool, error) {

	windows, err := e.hours.ActiveWindows(ctx, barberID, int(start.Weekday()))
	if err != nil {
		return false, err
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)

	// o atendimento precisa caber inteiro em UMA janela;
	// janelas adjacentes não se somam
	for _, w := range windows {
		winStart := atClock(start, w.StartTime)
		winEnd := atClock(start, w.EndTime)

		if !start.Before(winStart) && !end.After(winEnd) {
			return true, nil
		}
	}

	return false, nil
}

// AvailableSlots gera os inícios de slot do dia, em passos de durationMin
// a partir do início de cada janela, excluindo os que conflitam com
// agendamentos não cancelados. Dia sem expediente devolve lista vazia —
// resultado normal, não erro. Slots já passados não são filtrados aqui;
// isso é papel da camada de apresentação.
func (e *Engine) AvailableSlots(
	ctx context.Context,
	barberID uint,
	date time.Time,
	durationMin int,
) ([]time.Time, error) {

	if durationMin <= 0 {
		durationMin = DefaultSlotMinutes
	}

	day := dayStart(date)

	windows, err := e.hours.ActiveWindows(ctx, barberID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}

	slots := make([]time.Time, 0)
	if len(windows) == 0 {
		return slots, nil
	}

	appointments, err := e.appointments.AppointmentsForDay(ctx, barberID, day)
	if err != nil {
		return nil, err
	}

	// cancelados não bloqueiam horário
	busy := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if domain.Blocks(domain.Status(ap.Status)) {
			busy = append(busy, ap)
		}
	}

	slotDuration := time.Duration(durationMin) * time.Minute

	for _, w := range windows {
		winStart := atClock(day, w.StartTime)
		winEnd := atClock(day, w.EndTime)

		// o fim do último slot pode coincidir com o fim da janela
		for cur := winStart; !cur.Add(slotDuration).After(winEnd); cur = cur.Add(slotDuration) {
			slotEnd := cur.Add(slotDuration)

			conflict := false
			for _, ap := range busy {
				if ap.StartTime.Before(slotEnd) && ap.EndTime.After(cur) {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, cur)
			}
		}
	}

	// janelas podem vir em qualquer ordem; a saída é sempre crescente
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Before(slots[j])
	})

	return slots, nil
}

// dayStart normaliza para meia-noite preservando a localização
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// atClock monta o instante absoluto de um horário "15:04" no dia de ref
func atClock(ref time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ref.Location(),
	)
}
