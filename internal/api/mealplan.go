package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/planner"
	"github.com/vitalplan/backend/internal/service"
)

// MealPlanHandler is the HTTP entry point of the generation pipeline
// plus the plan repository reads.
type MealPlanHandler struct {
	pipeline          *planner.Pipeline
	preferenceService *service.PreferenceService
	planService       *service.PlanService
}

// NewMealPlanHandler creates a new MealPlanHandler instance
func NewMealPlanHandler(pipeline *planner.Pipeline, preferenceService *service.PreferenceService, planService *service.PlanService) *MealPlanHandler {
	return &MealPlanHandler{
		pipeline:          pipeline,
		preferenceService: preferenceService,
		planService:       planService,
	}
}

// RegisterRoutes wires the read endpoints. The generation endpoint is
// registered separately so the caller can stack the subscription gate
// and rate limiter in front of it.
func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:id", h.GetPlan)
	}
}

// RegisterGenerateRoute wires POST /meal-plans behind the given
// middleware chain.
func (h *MealPlanHandler) RegisterGenerateRoute(router *gin.RouterGroup, middlewares ...gin.HandlerFunc) {
	handlers := append(middlewares, h.GeneratePlan)
	router.POST("/meal-plans", handlers...)
}

// GeneratePlan runs one generation request end to end: load the stored
// preferences, check they can drive a request, then hand off to the
// pipeline. Failures surface as a uniform retryable error.
func (h *MealPlanHandler) GeneratePlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	uid := userID.(uuid.UUID)

	prefs, err := h.preferenceService.List(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}
	if err := h.preferenceService.ValidateForGeneration(prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "set at least one meal preference with a calorie or macro target first"})
		return
	}

	result, err := h.pipeline.Run(c.Request.Context(), uid, prefs)
	if err != nil {
		c.JSON(generationStatus(err), gin.H{"error": "plan generation failed, please try again"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"plan_id":       result.PlanID,
		"plan":          result.Plan,
		"shopping_list": result.ShoppingList,
	})
}

// generationStatus maps pipeline failures onto transport status codes.
// The response body stays uniform; only the code hints at retryability.
func generationStatus(err error) int {
	switch {
	case errors.Is(err, planner.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, planner.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, planner.ErrMalformedResponse), errors.Is(err, planner.ErrEmptyPlan):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *MealPlanHandler) ListPlans(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	plans, err := h.planService.List(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GetPlan returns one plan with its decoded shopping list. A plan owned
// by someone else is a 404, same as a missing one.
func (h *MealPlanHandler) GetPlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	row, err := h.planService.Find(c.Request.Context(), planID, userID.(uuid.UUID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plan"})
		return
	}

	plan, list, err := service.DecodePlan(row)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            row.ID,
		"start_date":    row.StartDate,
		"end_date":      row.EndDate,
		"created_at":    row.CreatedAt,
		"plan":          plan,
		"shopping_list": list,
	})
}
