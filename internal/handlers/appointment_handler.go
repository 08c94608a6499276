package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/agendalivre/agenda-api/internal/domain/schedule"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	listByDate   *scheduling.ListAppointmentsByDate
	listByMonth  *scheduling.ListAppointmentsByMonth
	updateStatus *scheduling.UpdateAppointmentStatus
}

func NewAppointmentHandler(
	db *gorm.DB,
	listByDate *scheduling.ListAppointmentsByDate,
	listByMonth *scheduling.ListAppointmentsByMonth,
	updateStatus *scheduling.UpdateAppointmentStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
		updateStatus: updateStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var prof models.Professional
	if err := h.db.First(&prof, profID).Error; err != nil {
		httperr.Internal(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	date, err := parseDateFor(&prof, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	list, err := h.listByDate.Execute(c.Request.Context(), profID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(200, gin.H{
		"date":         dateStr,
		"appointments": list,
	})
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	list, err := h.listByMonth.Execute(c.Request.Context(), profID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": list,
	})
}

// ======================================================
// UPDATE STATUS (CONFIRMAR / CANCELAR)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	to := domain.Status(req.Status)
	if to != domain.StatusConfirmed && to != domain.StatusCanceled {
		httperr.BadRequest(c, "invalid_status", "Status deve ser confirmed ou canceled.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), profID, uint(id), to)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(200, ap)
}
