package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/service"
)

// WellnessHandler serves combined meal/workout wellness plans.
type WellnessHandler struct {
	wellnessService *service.WellnessService
	profileService  *service.ProfileService
}

// NewWellnessHandler creates a new WellnessHandler instance
func NewWellnessHandler(wellnessService *service.WellnessService, profileService *service.ProfileService) *WellnessHandler {
	return &WellnessHandler{
		wellnessService: wellnessService,
		profileService:  profileService,
	}
}

func (h *WellnessHandler) RegisterRoutes(router *gin.RouterGroup) {
	wellness := router.Group("/wellness-plan")
	{
		wellness.POST("", h.GeneratePlan)
		wellness.GET("", h.LatestPlan)
	}
}

// GeneratePlan needs a completed questionnaire; without one there is
// nothing to generate from.
func (h *WellnessHandler) GeneratePlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	uid := userID.(uuid.UUID)

	profile, err := h.profileService.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "complete the wellness questionnaire first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	plan, err := h.wellnessService.GeneratePlan(c.Request.Context(), uid, profile)
	if err != nil {
		c.JSON(generationStatus(err), gin.H{"error": "plan generation failed, please try again"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *WellnessHandler) LatestPlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	plan, err := h.wellnessService.LatestPlan(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no wellness plan yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
