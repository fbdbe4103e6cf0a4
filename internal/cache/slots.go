package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/clipline/barber-booking/internal/domain/appointment"
)

const slotsTTL = 60 * time.Second

// SlotsCache guarda o resultado do cálculo de disponibilidade por
// (barbeiro, dia, duração). Best-effort: sem redis configurado, ou com
// redis fora do ar, tudo vira no-op e o cálculo segue direto no motor.
type SlotsCache struct {
	client *redis.Client
}

func NewSlotsCache(addr string) *SlotsCache {
	if addr == "" {
		return &SlotsCache{}
	}
	return &SlotsCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func slotsKey(barberID uint, date time.Time, durationMin int) string {
	return fmt.Sprintf("slots:%d:%s:%d", barberID, date.Format("2006-01-02"), durationMin)
}

func (c *SlotsCache) Get(
	ctx context.Context,
	barberID uint,
	date time.Time,
	durationMin int,
) ([]domain.TimeSlot, bool) {

	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, slotsKey(barberID, date, durationMin)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotsCache) Set(
	ctx context.Context,
	barberID uint,
	date time.Time,
	durationMin int,
	slots []domain.TimeSlot,
) {

	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, slotsKey(barberID, date, durationMin), raw, slotsTTL).Err(); err != nil {
		log.Println("slots cache set:", err)
	}
}

// InvalidateDay derruba todas as durações cacheadas do barbeiro no dia
// (um agendamento novo ou cancelado muda o resultado de todas elas)
func (c *SlotsCache) InvalidateDay(ctx context.Context, barberID uint, date time.Time) {
	c.invalidate(ctx, fmt.Sprintf("slots:%d:%s:*", barberID, date.Format("2006-01-02")))
}

// InvalidateBarber derruba o cache inteiro do barbeiro
// (mudança de expediente afeta todos os dias)
func (c *SlotsCache) InvalidateBarber(ctx context.Context, barberID uint) {
	c.invalidate(ctx, fmt.Sprintf("slots:%d:*", barberID))
}

func (c *SlotsCache) invalidate(ctx context.Context, pattern string) {
	if c == nil || c.client == nil {
		return
	}

	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Println("slots cache invalidate:", err)
	}
}
