package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/clipline/barber-booking/internal/httperr"
	"github.com/clipline/barber-booking/internal/httpresp"
	"github.com/clipline/barber-booking/internal/middleware"
	"github.com/clipline/barber-booking/internal/models"
	"github.com/clipline/barber-booking/internal/validators"
)

// Gestão da equipe: o dono cadastra e desativa barbeiros da barbearia.

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type UpdateBarberRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func requireOwner(c *gin.Context) bool {
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role != "owner" {
		httperr.Forbidden(c, "owner_only", "Apenas o dono da barbearia pode gerenciar a equipe.")
		return false
	}
	return true
}

func (h *StaffHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var staff []models.User
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("id ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar a equipe.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	if !requireOwner(c) {
		return
	}

	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "E-mail já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar barbeiro.")
		return
	}

	barber := models.User{
		BarbershopID: barbershopID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "barber",
		Active:       true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *StaffHandler) Update(c *gin.Context) {
	if !requireOwner(c) {
		return
	}

	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&barber).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, barber)
}
