package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/models"
	"github.com/vitalplan/backend/internal/planner"
)

// PlanService is the plan repository. Plans are append-only: Save
// inserts, Find and List read, and nothing updates or deletes. A
// regenerate request is simply a new Save.
type PlanService struct {
	db *gorm.DB
}

// NewPlanService creates a new PlanService instance
func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

// Save writes the plan and its shopping list in one transaction; the
// caller can never observe a plan without its list. JSON serialization
// happens only here, at the storage edge.
func (s *PlanService) Save(ctx context.Context, userID uuid.UUID, plan *planner.CanonicalPlan, list planner.ShoppingList) (uuid.UUID, error) {
	planData, err := json.Marshal(plan)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	listData, err := json.Marshal(list)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal shopping list: %w", err)
	}

	row := models.MealPlan{
		ID:           uuid.New(),
		UserID:       userID,
		StartDate:    plan.StartDate,
		EndDate:      plan.EndDate,
		PlanData:     models.JSONBDocument(planData),
		ShoppingList: models.JSONBDocument(listData),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	return row.ID, nil
}

// Find loads a plan by id for the given owner. A plan belonging to a
// different user is indistinguishable from a missing one: both return
// gorm.ErrRecordNotFound.
func (s *PlanService) Find(ctx context.Context, planID, userID uuid.UUID) (*models.MealPlan, error) {
	var row models.MealPlan
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the user's plans, newest first.
func (s *PlanService) List(ctx context.Context, userID uuid.UUID) ([]models.MealPlan, error) {
	var rows []models.MealPlan
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DecodePlan unpacks the stored plan document.
func DecodePlan(row *models.MealPlan) (*planner.CanonicalPlan, planner.ShoppingList, error) {
	var plan planner.CanonicalPlan
	if err := json.Unmarshal([]byte(row.PlanData), &plan); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	var list planner.ShoppingList
	if err := json.Unmarshal([]byte(row.ShoppingList), &list); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal shopping list: %w", err)
	}
	return &plan, list, nil
}
