package appointment

import (
	"context"

	"github.com/clipline/barber-booking/internal/audit"
	"github.com/clipline/barber-booking/internal/cache"
	domain "github.com/clipline/barber-booking/internal/domain/appointment"
	"github.com/clipline/barber-booking/internal/httperr"
	"github.com/clipline/barber-booking/internal/models"
	"github.com/clipline/barber-booking/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	slots *cache.SlotsCache
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	slots *cache.SlotsCache,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		slots: slots,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// cancelamento libera o horário
	uc.slots.InvalidateDay(ctx, barberID, ap.StartTime)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
