package appointment

import (
	"context"
	"time"

	"github.com/clipline/barber-booking/internal/cache"
	domain "github.com/clipline/barber-booking/internal/domain/appointment"
	"github.com/clipline/barber-booking/internal/domain/schedule"
	"github.com/clipline/barber-booking/internal/httperr"
)

type GetAvailability struct {
	repo   domain.Repository
	engine *schedule.Engine
	slots  *cache.SlotsCache
}

func NewGetAvailability(
	repo domain.Repository,
	engine *schedule.Engine,
	slots *cache.SlotsCache,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		engine: engine,
		slots:  slots,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	durationMin := service.DurationMin
	if durationMin <= 0 {
		durationMin = schedule.DefaultSlotMinutes
	}

	if cached, ok := uc.slots.Get(ctx, in.BarberID, in.Date, durationMin); ok {
		return cached, nil
	}

	starts, err := uc.engine.AvailableSlots(ctx, in.BarberID, in.Date, durationMin)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(durationMin) * time.Minute

	slots := make([]domain.TimeSlot, 0, len(starts))
	for _, s := range starts {
		slots = append(slots, domain.TimeSlot{
			Start: s.Format("15:04"),
			End:   s.Add(slotDuration).Format("15:04"),
		})
	}

	uc.slots.Set(ctx, in.BarberID, in.Date, durationMin, slots)

	return slots, nil
}
