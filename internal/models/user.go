package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	Username           string         `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email              string         `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash       string         `gorm:"size:256;not null" json:"-"`
	SubscriptionActive bool           `gorm:"not null;default:false" json:"subscription_active"`
	SubscriptionEnd    *time.Time     `json:"subscription_end,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsEntitled reports whether the user may run plan generation.
func (u *User) IsEntitled(now time.Time) bool {
	if !u.SubscriptionActive {
		return false
	}
	if u.SubscriptionEnd != nil && now.After(*u.SubscriptionEnd) {
		return false
	}
	return true
}

// TrialUser represents a 7-day trial signup without credentials.
type TrialUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	TrialStart   time.Time `gorm:"not null" json:"trial_start"`
	TrialEnd     time.Time `gorm:"not null" json:"trial_end"`
	HasConverted bool      `gorm:"not null;default:false" json:"has_converted"`
	CreatedAt    time.Time `json:"created_at"`
}

func (TrialUser) TableName() string {
	return "trial_users"
}

// NewTrialUser starts a trial clock of seven days from now.
func NewTrialUser(email, name string, now time.Time) *TrialUser {
	return &TrialUser{
		Email:      email,
		Name:       name,
		TrialStart: now,
		TrialEnd:   now.Add(7 * 24 * time.Hour),
	}
}

// IsTrialActive reports whether the trial window is still open.
func (t *TrialUser) IsTrialActive(now time.Time) bool {
	return !now.After(t.TrialEnd)
}
