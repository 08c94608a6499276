package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/usecase/scheduling"
	"github.com/agendalivre/agenda-api/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db       *gorm.DB
	getSlots *scheduling.GetSlots
	booking  *scheduling.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	getSlots *scheduling.GetSlots,
	booking *scheduling.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		getSlots: getSlots,
		booking:  booking,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicBookingRequest struct {
	StudentName  string `json:"student_name" binding:"required"`
	StudentEmail string `json:"student_email" binding:"required,email"`
	StudentPhone string `json:"student_phone"`

	ServiceID uint `json:"service_id" binding:"required"`

	// Janela exata do slot escolhido, em RFC3339 (UTC)
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`

	Notes string `json:"notes"`
}

////////////////////////////////////////////////////////
// PROFILE
////////////////////////////////////////////////////////

func (h *PublicHandler) GetProfile(c *gin.Context) {
	prof, ok := h.professionalFromSlug(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional": gin.H{
			"id":         prof.ID,
			"name":       prof.Name,
			"slug":       prof.Slug,
			"timezone":   prof.Timezone,
			"avatar_url": prof.AvatarURL,
		},
	})
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	prof, ok := h.professionalFromSlug(c)
	if !ok {
		return
	}

	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("professional_id = ? AND active = true", prof.ID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional": gin.H{
			"id":   prof.ID,
			"name": prof.Name,
			"slug": prof.Slug,
		},
		"services": services,
	})
}

////////////////////////////////////////////////////////
// SLOTS (REUSO TOTAL DO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) GetSlots(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	prof, ok := h.professionalFromSlug(c)
	if !ok {
		return
	}

	result, err := h.getSlots.Execute(
		c.Request.Context(),
		scheduling.GetSlotsInput{
			ProfessionalID: prof.ID,
			ServiceID:      uint(serviceID),
			Date:           dateStr,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		default:
			httperr.Internal(c, "slots_failed", "Erro ao calcular horários.")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

////////////////////////////////////////////////////////
// CREATE BOOKING (PÚBLICO)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	prof, ok := h.professionalFromSlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.StudentEmail))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	result, err := h.booking.Execute(
		c.Request.Context(),
		scheduling.CreateBookingInput{
			ProfessionalID: prof.ID,
			ServiceID:      req.ServiceID,
			StudentName:    req.StudentName,
			StudentEmail:   email,
			StudentPhone:   req.StudentPhone,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Notes:          req.Notes,
		},
	)

	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

func (h *PublicHandler) professionalFromSlug(c *gin.Context) (*models.Professional, bool) {
	slug := c.Param("slug")

	var prof models.Professional
	if err := h.db.Where("slug = ?", slug).First(&prof).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return nil, false
	}

	return &prof, true
}

func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço inválido.")

	case httperr.IsBusiness(err, "invalid_time_range"):
		httperr.BadRequest(c, "invalid_time_range", "Horário inválido.")

	case httperr.IsBusiness(err, "invalid_slot"):
		httperr.BadRequest(c, "invalid_slot", "A janela escolhida não corresponde à duração do serviço.")

	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horário muito próximo ou no passado.")

	case httperr.IsBusiness(err, "outside_availability"):
		httperr.BadRequest(c, "outside_availability", "Fora do horário de atendimento.")

	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Horário indisponível. Escolha outro horário.")

	default:
		httperr.Internal(c, "failed_to_create_booking", "Erro ao criar agendamento.")
	}
}
