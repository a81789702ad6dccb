package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutLog records one completed workout session.
type WorkoutLog struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	WorkoutType    string           `gorm:"size:50" json:"workout_type"`
	Duration       int              `json:"duration"`
	Intensity      string           `gorm:"size:20" json:"intensity"`
	Exercises      JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"exercises"`
	CaloriesBurned int              `json:"calories_burned"`
	Notes          string           `gorm:"type:text" json:"notes"`
	CompletedAt    time.Time        `json:"completed_at"`
}

func (WorkoutLog) TableName() string {
	return "workout_logs"
}

// ExerciseProgress records weight/reps/sets for one exercise occurrence,
// used for progress charts.
type ExerciseProgress struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExerciseName string    `gorm:"size:100;not null" json:"exercise_name"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Sets         int       `json:"sets"`
	RecordedAt   time.Time `json:"recorded_at"`
}

func (ExerciseProgress) TableName() string {
	return "exercise_progress"
}
