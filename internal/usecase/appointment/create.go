package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clipline/barber-booking/internal/audit"
	"github.com/clipline/barber-booking/internal/cache"
	domain "github.com/clipline/barber-booking/internal/domain/appointment"
	"github.com/clipline/barber-booking/internal/domain/schedule"
	"github.com/clipline/barber-booking/internal/httperr"
	"github.com/clipline/barber-booking/internal/models"
	"github.com/clipline/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	BarberID     uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	engine *schedule.Engine
	slots  *cache.SlotsCache
	audit  *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	engine *schedule.Engine,
	slots *cache.SlotsCache,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		engine: engine,
		slots:  slots,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// antecedência mínima
	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.Now()
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	durationMin := service.DurationMin
	if durationMin <= 0 {
		durationMin = schedule.DefaultSlotMinutes
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)

	// precisa caber no expediente
	ok, err := uc.engine.IsAvailable(ctx, in.BarberID, start, durationMin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.BarbershopID,
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerEmail,
	)
	if err != nil {
		return nil, err
	}

	// pré-check de conflito (intervalos, não instantes)
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.BarberID,
		start,
		end,
	); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Ref:          uuid.NewString(),
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		CustomerID:   customer.ID,
		ServiceID:    service.ID,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		// duas reservas simultâneas passam no pré-check; a segunda
		// escrita morre no índice parcial e vira o mesmo conflito
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.slots.InvalidateDay(ctx, in.BarberID, start)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
