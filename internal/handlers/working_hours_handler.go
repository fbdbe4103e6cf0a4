package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clipline/barber-booking/internal/cache"
	"github.com/clipline/barber-booking/internal/domain/schedule"
	"github.com/clipline/barber-booking/internal/httperr"
	"github.com/clipline/barber-booking/internal/middleware"
	"github.com/clipline/barber-booking/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	slots *cache.SlotsCache
}

func NewWorkingHoursHandler(db *gorm.DB, slots *cache.SlotsCache) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, slots: slots}
}

type WorkWindowConfig struct {
	Weekday   int    `json:"weekday"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type WorkingHoursUpdateRequest struct {
	Windows []WorkWindowConfig `json:"windows" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var windows []models.WorkHours
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC, start_time ASC").
		Find(&windows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, windows)
}

// Update substitui o expediente inteiro do barbeiro pelo enviado.
// Toda janela passa pela validação de escrita antes de tocar no banco.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := make(map[string]bool, len(req.Windows))
	for _, w := range req.Windows {
		if err := schedule.ValidateWindow(w.Weekday, w.StartTime, w.EndTime); err != nil {
			var be httperr.BusinessError
			if errors.As(err, &be) {
				httperr.BadRequest(c, be.Code, "Janela de expediente inválida.")
				return
			}
			httperr.BadRequest(c, "invalid_window", "Janela de expediente inválida.")
			return
		}

		key := fmt.Sprintf("%d|%s|%s", w.Weekday, w.StartTime, w.EndTime)
		if seen[key] {
			httperr.BadRequest(c, "duplicate_window", "Janela de expediente duplicada.")
			return
		}
		seen[key] = true
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.WorkHours{}).Error; err != nil {
			return err
		}

		if len(req.Windows) == 0 {
			return nil
		}

		toCreate := make([]models.WorkHours, 0, len(req.Windows))
		for _, w := range req.Windows {
			toCreate = append(toCreate, models.WorkHours{
				BarberID:  barberID,
				Weekday:   w.Weekday,
				Active:    w.Active,
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
			})
		}

		return tx.Create(&toCreate).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	// expediente novo muda a disponibilidade de todos os dias
	h.slots.InvalidateBarber(c.Request.Context(), barberID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
