package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/middleware"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	tutorIDVal, exists := c.Get(middleware.ContextTutorID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "tutor_not_in_context"})
		return
	}

	tutorID, ok := tutorIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_tutor_id_type"})
		return
	}

	var tutor models.Tutor
	if err := h.db.First(&tutor, tutorID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "tutor_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tutor": gin.H{
			"tutor_id":   tutor.TutorID,
			"name":       tutor.Name,
			"email":      tutor.Email,
			"username":   tutor.Username,
			"phone":      tutor.Phone,
			"avatar_url": tutor.AvatarURL,
		},
	})
}
