package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/models"
	"github.com/vitalplan/backend/internal/types"
)

// ProfileService handles the wellness questionnaire and profile reads.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// SaveQuestionnaire creates or replaces the user's wellness profile from
// a validated questionnaire submission.
func (s *ProfileService) SaveQuestionnaire(ctx context.Context, userID uuid.UUID, req *types.QuestionnaireRequest) (*models.WellnessProfile, error) {
	var profile models.WellnessProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = models.WellnessProfile{
			ID:     uuid.New(),
			UserID: userID,
		}
	}

	profile.Age = req.Age
	profile.Height = req.Height
	profile.Weight = req.Weight
	profile.Goals = req.Goals
	profile.DietaryRestrictions = req.DietaryRestrictions
	profile.ActivityLevel = req.ActivityLevel

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetProfile loads the user's wellness profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.WellnessProfile, error) {
	var profile models.WellnessProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
