package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/models"
)

// WellnessGenerator is the slice of the generation client used for
// wellness plans.
type WellnessGenerator interface {
	GenerateWellnessPlan(ctx context.Context, profile *models.WellnessProfile) (*WellnessPlanData, error)
}

// WellnessService generates and stores combined meal/workout plans.
type WellnessService struct {
	db        *gorm.DB
	generator WellnessGenerator
}

// NewWellnessService creates a new WellnessService instance
func NewWellnessService(db *gorm.DB, generator WellnessGenerator) *WellnessService {
	return &WellnessService{db: db, generator: generator}
}

// GeneratePlan produces a wellness plan from the stored profile and
// persists it. Plans are append-only; the newest row wins for display.
func (s *WellnessService) GeneratePlan(ctx context.Context, userID uuid.UUID, profile *models.WellnessProfile) (*models.WellnessPlan, error) {
	data, err := s.generator.GenerateWellnessPlan(ctx, profile)
	if err != nil {
		return nil, err
	}

	plan := models.WellnessPlan{
		ID:          uuid.New(),
		UserID:      userID,
		MealPlan:    models.JSONBDocument(data.MealPlan),
		WorkoutPlan: models.JSONBDocument(data.WorkoutPlan),
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}

	return &plan, nil
}

// LatestPlan returns the user's most recent wellness plan.
func (s *WellnessService) LatestPlan(ctx context.Context, userID uuid.UUID) (*models.WellnessPlan, error) {
	var plan models.WellnessPlan
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}
