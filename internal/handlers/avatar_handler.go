package handlers

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/storage"
)

const maxAvatarUploadBytes = 5 << 20

type AvatarHandler struct {
	db    *gorm.DB
	store *storage.AvatarStore
}

func NewAvatarHandler(db *gorm.DB, store *storage.AvatarStore) *AvatarHandler {
	return &AvatarHandler{db: db, store: store}
}

// Upload recebe multipart "avatar" (JPEG ou PNG), converte e publica no
// bucket, e grava a URL final no perfil.
func (h *AvatarHandler) Upload(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	if !h.store.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage_not_configured"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_file"})
		return
	}

	if fileHeader.Size > maxAvatarUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_too_large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_file"})
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image"})
		return
	}

	url, err := h.store.Upload(c.Request.Context(), profID, img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload_failed"})
		return
	}

	if err := h.db.
		Model(&models.Professional{}).
		Where("id = ?", profID).
		Update("avatar_url", url).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_avatar_url"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
