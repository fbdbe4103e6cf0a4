package schedule

import (
	"context"
	"time"

	"github.com/clipline/barber-booking/internal/models"
)

// WorkHoursStore devolve as janelas de expediente ativas de um barbeiro
// para um dia da semana. Janelas inativas nunca chegam ao motor.
type WorkHoursStore interface {
	ActiveWindows(
		ctx context.Context,
		barberID uint,
		weekday int,
	) ([]models.WorkHours, error)
}

// AppointmentStore devolve todos os agendamentos do barbeiro no dia,
// independente de status; filtrar cancelados é responsabilidade do motor.
type AppointmentStore interface {
	AppointmentsForDay(
		ctx context.Context,
		barberID uint,
		day time.Time,
	) ([]models.Appointment, error)
}
