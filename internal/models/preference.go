package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal types accepted for a MealPreference row.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// Upper bounds for per-meal macro targets. Values beyond these are
// clamped, both on preference input and on generated plan output.
const (
	MaxCaloriesTarget = 2000
	MaxProteinTarget  = 200
	MaxCarbsTarget    = 300
	MaxFatTarget      = 100
)

// MealPreference is the per-(user, meal_type) preference record. At most
// one row exists per pair; writes go through upsert.
type MealPreference struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID               uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_user_meal_type" json:"user_id"`
	MealType             string           `gorm:"size:20;not null;uniqueIndex:idx_user_meal_type" json:"meal_type"`
	PreferredTime        string           `gorm:"size:5" json:"preferred_time"`
	CaloriesTarget       int              `json:"calories_target"`
	ProteinTarget        int              `json:"protein_target"`
	CarbsTarget          int              `json:"carbs_target"`
	FatTarget            int              `json:"fat_target"`
	ExcludedIngredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"excluded_ingredients"`
	AvailableIngredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"available_ingredients"`
	PreferredCuisine     string           `gorm:"size:50;default:'any'" json:"preferred_cuisine"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

func (MealPreference) TableName() string {
	return "meal_preferences"
}

// ValidMealType reports whether t is one of the accepted meal types.
func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}
