package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/service"
	"github.com/vitalplan/backend/internal/types"
)

// RecipeHandler serves ingredient-based recipe suggestions.
type RecipeHandler struct {
	generator      service.RecipeGenerator
	profileService *service.ProfileService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(generator service.RecipeGenerator, profileService *service.ProfileService) *RecipeHandler {
	return &RecipeHandler{
		generator:      generator,
		profileService: profileService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/from-ingredients", h.FromIngredients)
}

func (h *RecipeHandler) FromIngredients(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.IngredientRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
			return
		}
		profile = nil
	}

	recipes, err := h.generator.RecipesFromIngredients(c.Request.Context(), req.Ingredients, profile)
	if err != nil {
		c.JSON(generationStatus(err), gin.H{"error": "recipe generation failed, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
