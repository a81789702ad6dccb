package models

import (
	"time"

	"github.com/google/uuid"
)

// WellnessTip is a daily generated tip; at most one per user per day.
type WellnessTip struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TipContent      string    `gorm:"type:text;not null" json:"tip_content"`
	MotivationQuote string    `gorm:"size:500;not null" json:"motivation_quote"`
	Category        string    `gorm:"size:50" json:"category"`
	IsViewed        bool      `gorm:"not null;default:false" json:"is_viewed"`
	CreatedAt       time.Time `json:"created_at"`
}

func (WellnessTip) TableName() string {
	return "wellness_tips"
}
