package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/models"
	"github.com/vitalplan/backend/internal/types"
)

// WorkoutService records workout sessions and per-exercise progress.
type WorkoutService struct {
	db *gorm.DB
}

// NewWorkoutService creates a new WorkoutService instance
func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// LogWorkout writes the workout log and its progress entries in one
// transaction.
func (s *WorkoutService) LogWorkout(ctx context.Context, userID uuid.UUID, req *types.WorkoutLogRequest) (*models.WorkoutLog, error) {
	now := time.Now()
	logEntry := models.WorkoutLog{
		ID:             uuid.New(),
		UserID:         userID,
		WorkoutType:    req.WorkoutType,
		Duration:       req.Duration,
		Intensity:      req.Intensity,
		Exercises:      models.JSONBStringArray(req.Exercises),
		CaloriesBurned: req.CaloriesBurned,
		Notes:          req.Notes,
		CompletedAt:    now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&logEntry).Error; err != nil {
			return err
		}
		for _, entry := range req.Progress {
			if entry.Weight == 0 && entry.Reps == 0 {
				continue
			}
			sets := entry.Sets
			if sets == 0 {
				sets = 1
			}
			progress := models.ExerciseProgress{
				ID:           uuid.New(),
				UserID:       userID,
				ExerciseName: entry.ExerciseName,
				Weight:       entry.Weight,
				Reps:         entry.Reps,
				Sets:         sets,
				RecordedAt:   now,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &logEntry, nil
}

// RecentWorkouts returns the user's latest workout logs.
func (s *WorkoutService) RecentWorkouts(ctx context.Context, userID uuid.UUID, limit int) ([]models.WorkoutLog, error) {
	if limit <= 0 {
		limit = 10
	}
	var logs []models.WorkoutLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ExerciseSeries is the chart data for one exercise.
type ExerciseSeries struct {
	Dates   []string  `json:"dates"`
	Weights []float64 `json:"weights"`
	Reps    []int     `json:"reps"`
}

// ProgressData groups recent progress records by exercise name for
// charting.
func (s *WorkoutService) ProgressData(ctx context.Context, userID uuid.UUID) (map[string]*ExerciseSeries, error) {
	var records []models.ExerciseProgress
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Limit(50).
		Find(&records).Error; err != nil {
		return nil, err
	}

	data := make(map[string]*ExerciseSeries)
	for _, rec := range records {
		series, ok := data[rec.ExerciseName]
		if !ok {
			series = &ExerciseSeries{}
			data[rec.ExerciseName] = series
		}
		series.Dates = append(series.Dates, rec.RecordedAt.Format("2006-01-02"))
		series.Weights = append(series.Weights, rec.Weight)
		series.Reps = append(series.Reps, rec.Reps)
	}

	return data, nil
}
