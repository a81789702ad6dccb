package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/middleware"
	"github.com/vitalplan/backend/internal/planner"
	"github.com/vitalplan/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "VitalPlan API is running",
		"version": "v1.0.0",
	})
}

// Services bundles the constructed services the route table needs.
type Services struct {
	Auth       service.IAuthService
	Billing    service.IBillingService
	LLM        *service.LLMService
	Profile    *service.ProfileService
	Preference *service.PreferenceService
	Plan       *service.PlanService
	Wellness   *service.WellnessService
	Workout    *service.WorkoutService
	Tip        *service.TipService
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, svcs Services) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	// Rate limiter for plan generation; without Redis we run ungated
	var planLimiter *middleware.RateLimiter
	if redisClient != nil {
		planLimiter = middleware.NewPlanGenerationRateLimiter(redisClient)
	} else {
		log.Printf("api: redis unavailable, plan generation rate limiting disabled")
	}

	pipeline := planner.NewPipeline(svcs.LLM, svcs.Plan)

	authHandler := NewAuthHandler(svcs.Auth, db)
	profileHandler := NewProfileHandler(svcs.Profile)
	preferenceHandler := NewPreferenceHandler(svcs.Preference)
	mealPlanHandler := NewMealPlanHandler(pipeline, svcs.Preference, svcs.Plan)
	wellnessHandler := NewWellnessHandler(svcs.Wellness, svcs.Profile)
	workoutHandler := NewWorkoutHandler(svcs.Workout)
	tipHandler := NewTipHandler(svcs.Tip, svcs.Profile)
	recipeHandler := NewRecipeHandler(svcs.LLM, svcs.Profile)
	billingHandler := NewBillingHandler(svcs.Billing)

	v1 := router.Group("/api/v1")

	// Public routes
	authHandler.RegisterRoutes(v1)
	billingHandler.RegisterWebhookRoute(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(svcs.Auth))
	{
		profileHandler.RegisterRoutes(protected)
		preferenceHandler.RegisterRoutes(protected)
		mealPlanHandler.RegisterRoutes(protected)
		wellnessHandler.RegisterRoutes(protected)
		workoutHandler.RegisterRoutes(protected)
		tipHandler.RegisterRoutes(protected)
		recipeHandler.RegisterRoutes(protected)
		billingHandler.RegisterRoutes(protected)
	}

	// Plan generation sits behind the subscription gate and, when Redis
	// is up, the hourly rate limit.
	gates := []gin.HandlerFunc{middleware.SubscriptionMiddleware(svcs.Billing)}
	if planLimiter != nil {
		gates = append(gates, planLimiter.RateLimitMiddleware())
	}
	mealPlanHandler.RegisterGenerateRoute(protected, gates...)
}
