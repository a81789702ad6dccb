package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/models"
	"github.com/vitalplan/backend/internal/service"
)

// TipHandler serves the daily wellness tip.
type TipHandler struct {
	tipService     *service.TipService
	profileService *service.ProfileService
}

// NewTipHandler creates a new TipHandler instance
func NewTipHandler(tipService *service.TipService, profileService *service.ProfileService) *TipHandler {
	return &TipHandler{
		tipService:     tipService,
		profileService: profileService,
	}
}

func (h *TipHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/wellness-tip", h.DailyTip)
	router.POST("/wellness-tip/:id/viewed", h.MarkViewed)
}

func (h *TipHandler) DailyTip(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	uid := userID.(uuid.UUID)

	// Tip generation works without a questionnaire; the profile just
	// sharpens the prompt.
	profile, err := h.profileService.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
			return
		}
		profile = &models.WellnessProfile{}
	}

	tip, err := h.tipService.DailyTip(c.Request.Context(), uid, profile)
	if err != nil {
		c.JSON(generationStatus(err), gin.H{"error": "failed to get today's tip, please try again"})
		return
	}

	c.JSON(http.StatusOK, tip)
}

func (h *TipHandler) MarkViewed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tip id"})
		return
	}

	if err := h.tipService.MarkViewed(c.Request.Context(), tipID, userID.(uuid.UUID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark tip viewed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tip marked as viewed"})
}
