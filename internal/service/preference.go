package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/models"
	"github.com/vitalplan/backend/internal/types"
)

// ErrNoGenerationTargets is returned when stored preferences cannot
// drive a generation request.
var ErrNoGenerationTargets = errors.New("preferences must include at least one numeric target")

// PreferenceService is the preference store: one MealPreference row per
// (user, meal_type), written with upsert semantics.
type PreferenceService struct {
	db *gorm.DB
}

// NewPreferenceService creates a new PreferenceService instance
func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// Upsert creates or updates the preference row for (user, meal_type).
func (s *PreferenceService) Upsert(ctx context.Context, userID uuid.UUID, req *types.MealPreferenceRequest) (*models.MealPreference, error) {
	if !models.ValidMealType(req.MealType) {
		return nil, fmt.Errorf("invalid meal type %q", req.MealType)
	}

	cuisine := req.PreferredCuisine
	if cuisine == "" {
		cuisine = "any"
	}

	var pref models.MealPreference
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND meal_type = ?", userID, req.MealType).
		First(&pref).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		pref = models.MealPreference{
			ID:       uuid.New(),
			UserID:   userID,
			MealType: req.MealType,
		}
	}

	pref.PreferredTime = req.PreferredTime
	pref.CaloriesTarget = clampTarget(req.CaloriesTarget, models.MaxCaloriesTarget)
	pref.ProteinTarget = clampTarget(req.ProteinTarget, models.MaxProteinTarget)
	pref.CarbsTarget = clampTarget(req.CarbsTarget, models.MaxCarbsTarget)
	pref.FatTarget = clampTarget(req.FatTarget, models.MaxFatTarget)
	pref.ExcludedIngredients = models.JSONBStringArray(req.ExcludedIngredients)
	pref.AvailableIngredients = models.JSONBStringArray(req.AvailableIngredients)
	pref.PreferredCuisine = cuisine

	if err := s.db.WithContext(ctx).Save(&pref).Error; err != nil {
		return nil, err
	}

	return &pref, nil
}

// List returns all preference rows for a user.
func (s *PreferenceService) List(ctx context.Context, userID uuid.UUID) ([]models.MealPreference, error) {
	var prefs []models.MealPreference
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("meal_type").
		Find(&prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}

// ValidateForGeneration checks that the stored preferences can drive a
// generation request: at least one row, and at least one numeric target
// across the set. Everything else passes through as unconstrained.
func (s *PreferenceService) ValidateForGeneration(prefs []models.MealPreference) error {
	if len(prefs) == 0 {
		return ErrNoGenerationTargets
	}
	for _, p := range prefs {
		if p.CaloriesTarget > 0 || p.ProteinTarget > 0 || p.CarbsTarget > 0 || p.FatTarget > 0 {
			return nil
		}
	}
	return ErrNoGenerationTargets
}

func clampTarget(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
