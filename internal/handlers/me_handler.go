package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/timezone"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

type UpdateMeRequest struct {
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes,omitempty"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	profIDVal, exists := c.Get(middleware.ContextProfessionalID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "professional_not_in_context"})
		return
	}

	profID, ok := profIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_professional_id_type"})
		return
	}

	var prof models.Professional
	if err := h.db.First(&prof, profID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "professional_not_found"})
		return
	}

	c.JSON(http.StatusOK, prof)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var prof models.Professional
	if err := h.db.First(&prof, profID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "professional_not_found"})
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		prof.Name = *req.Name
	}
	if req.Phone != nil {
		prof.Phone = *req.Phone
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
			return
		}
		prof.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_min_advance"})
			return
		}
		prof.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&prof).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_professional"})
		return
	}

	c.JSON(http.StatusOK, prof)
}
