package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/agendalivre/agenda-api/internal/domain/schedule"
	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/usecase/scheduling"
)

type AvailabilityHandler struct {
	db      *gorm.DB
	replace *scheduling.ReplaceAvailability
}

func NewAvailabilityHandler(db *gorm.DB, replace *scheduling.ReplaceAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, replace: replace}
}

type AvailabilityUpdateRequest struct {
	Blocks []domain.BlockInput `json:"blocks" binding:"required"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var blocks []models.AvailabilityBlock
	if err := h.db.
		Where("professional_id = ?", profID).
		Order("day_of_week ASC, start_time ASC").
		Find(&blocks).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// Update troca a grade semanal inteira (replace-all). Blocos inválidos
// voltam todos de uma vez em "violations", sem gravar nada.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	saved, violations, err := h.replace.Execute(c.Request.Context(), profID, req.Blocks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_availability"})
		return
	}

	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "invalid_blocks",
			"violations": violations,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocks": saved})
}
