package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WellnessProfile holds the questionnaire answers for a user.
type WellnessProfile struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Age                 int            `json:"age"`
	Height              float64        `json:"height"`
	Weight              float64        `json:"weight"`
	Goals               string         `gorm:"size:500" json:"goals"`
	DietaryRestrictions string         `gorm:"size:500" json:"dietary_restrictions"`
	ActivityLevel       string         `gorm:"size:50" json:"activity_level"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (WellnessProfile) TableName() string {
	return "wellness_profiles"
}
