package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/vitalplan/backend/internal/models"
	"github.com/vitalplan/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(userID uuid.UUID, username string) (string, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IBillingService defines the interface for subscription operations
type IBillingService interface {
	CreateCheckoutSession(ctx context.Context, userID uuid.UUID) (*CheckoutSession, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	IsEntitled(ctx context.Context, userID uuid.UUID) (bool, error)
}

// RecipeGenerator is the slice of the generation client used for
// ingredient-based recipe suggestions.
type RecipeGenerator interface {
	RecipesFromIngredients(ctx context.Context, ingredients []string, profile *models.WellnessProfile) ([]RecipeSuggestion, error)
}
