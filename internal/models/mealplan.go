package models

import (
	"time"

	"github.com/google/uuid"
)

// MealPlan is a generated plan row. Plans are append-only: regeneration
// inserts a new row and never mutates an old one. The shopping list is
// embedded with its parent plan, not a separate queryable table.
type MealPlan struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	StartDate    time.Time     `gorm:"type:date;not null" json:"start_date"`
	EndDate      time.Time     `gorm:"type:date;not null" json:"end_date"`
	PlanData     JSONBDocument `gorm:"type:jsonb;not null" json:"plan_data"`
	ShoppingList JSONBDocument `gorm:"type:jsonb;not null" json:"shopping_list"`
	CreatedAt    time.Time     `json:"created_at"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}

// WellnessPlan pairs a generated meal plan outline with a workout plan.
type WellnessPlan struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	MealPlan    JSONBDocument `gorm:"type:jsonb;not null" json:"meal_plan"`
	WorkoutPlan JSONBDocument `gorm:"type:jsonb;not null" json:"workout_plan"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (WellnessPlan) TableName() string {
	return "wellness_plans"
}
