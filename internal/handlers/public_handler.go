package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/clipline/barber-booking/internal/domain/appointment"
	"github.com/clipline/barber-booking/internal/httperr"
	"github.com/clipline/barber-booking/internal/models"
	ucAppointment "github.com/clipline/barber-booking/internal/usecase/appointment"
)

// Superfície pública da barbearia: tudo aqui é resolvido pelo slug,
// sem autenticação.

type PublicHandler struct {
	db           *gorm.DB
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		create:       create,
	}
}

func (h *PublicHandler) shopBySlug(c *gin.Context) (*models.Barbershop, bool) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar barbearia.")
		return nil, false
	}

	return &shop, true
}

// resolveBarber devolve o barbeiro pedido em ?barber_id, ou o dono da
// barbearia quando o parâmetro é omitido.
func (h *PublicHandler) resolveBarber(c *gin.Context, shop *models.Barbershop) (*models.User, bool) {
	q := h.db.Where("barbershop_id = ? AND active = ?", shop.ID, true)

	if barberIDStr := c.Query("barber_id"); barberIDStr != "" {
		barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return nil, false
		}
		q = q.Where("id = ?", uint(barberID))
	} else {
		q = q.Where("role = ?", "owner")
	}

	var barber models.User
	if err := q.First(&barber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return nil, false
	}

	return &barber, true
}

// ======================================================
// INFO DA BARBEARIA
// ======================================================

func (h *PublicHandler) GetBarbershop(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   shop.ID,
		"name": shop.Name,
		"slug": shop.Slug,
	})
}

// ======================================================
// SERVIÇOS
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	q := h.db.Where("barbershop_id = ? AND active = ?", shop.ID, true)

	if category := strings.ToLower(strings.TrimSpace(c.Query("category"))); category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	barber, ok := h.resolveBarber(c, shop)
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		BarberID:     barber.ID,
		ServiceID:    uint(serviceID),
		Date:         date,
	})
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      c.Query("date"),
		"barber_id": barber.ID,
		"slots":     slots,
	})
}

// ======================================================
// AGENDAMENTO PÚBLICO
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	barber, ok := h.resolveBarber(c, shop)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarbershopID:  shop.ID,
		BarberID:      barber.ID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ref":        ap.Ref,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}
