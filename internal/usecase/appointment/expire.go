package appointment

import (
	"context"

	"github.com/clipline/barber-booking/internal/audit"
	domain "github.com/clipline/barber-booking/internal/domain/appointment"
	"github.com/clipline/barber-booking/internal/timezone"
)

// ExpireOverdue marca como expirados os agendamentos pendentes cujo
// horário já passou. Roda num ticker do processo e também sob demanda.
type ExpireOverdue struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewExpireOverdue(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ExpireOverdue {
	return &ExpireOverdue{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ExpireOverdue) Execute(ctx context.Context) (int64, error) {
	count, err := uc.repo.ExpireOverdue(ctx, timezone.Now())
	if err != nil {
		return 0, err
	}

	if count > 0 {
		uc.audit.Dispatch(audit.Event{
			Action: "appointments_expired",
			Entity: "appointment",
			Metadata: map[string]any{
				"count": count,
			},
		})
	}

	return count, nil
}
