package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/models"
)

// TipGenerator is the slice of the generation client used for daily
// tips.
type TipGenerator interface {
	GenerateTip(ctx context.Context, profile *models.WellnessProfile) (*TipData, error)
}

// TipService serves the daily wellness tip: at most one generated per
// user per day, cached in Redis in front of the database.
type TipService struct {
	db        *gorm.DB
	redis     *redis.Client
	generator TipGenerator
}

// NewTipService creates a new TipService instance
func NewTipService(db *gorm.DB, redisClient *redis.Client, generator TipGenerator) *TipService {
	return &TipService{db: db, redis: redisClient, generator: generator}
}

func tipCacheKey(userID uuid.UUID, day string) string {
	return fmt.Sprintf("tip:%s:%s", userID, day)
}

// DailyTip returns today's tip for the user, generating and persisting
// one if none exists yet. Cache misses fall through to the database, so
// Redis being down only costs a query.
func (s *TipService) DailyTip(ctx context.Context, userID uuid.UUID, profile *models.WellnessProfile) (*models.WellnessTip, error) {
	day := time.Now().Format("2006-01-02")

	if s.redis != nil {
		if data, err := s.redis.Get(ctx, tipCacheKey(userID, day)).Bytes(); err == nil {
			var tip models.WellnessTip
			if err := json.Unmarshal(data, &tip); err == nil {
				return &tip, nil
			}
		}
	}

	var tip models.WellnessTip
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, startOfDay(time.Now())).
		First(&tip).Error
	if err == nil {
		s.cache(ctx, userID, day, &tip)
		return &tip, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	data, err := s.generator.GenerateTip(ctx, profile)
	if err != nil {
		return nil, err
	}

	tip = models.WellnessTip{
		ID:              uuid.New(),
		UserID:          userID,
		TipContent:      data.Tip,
		MotivationQuote: data.Quote,
		Category:        data.Category,
	}
	if err := s.db.WithContext(ctx).Create(&tip).Error; err != nil {
		return nil, err
	}

	s.cache(ctx, userID, day, &tip)
	return &tip, nil
}

// MarkViewed flags the tip as seen.
func (s *TipService) MarkViewed(ctx context.Context, tipID, userID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&models.WellnessTip{}).
		Where("id = ? AND user_id = ?", tipID, userID).
		Update("is_viewed", true).Error
}

func (s *TipService) cache(ctx context.Context, userID uuid.UUID, day string, tip *models.WellnessTip) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(tip)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, tipCacheKey(userID, day), data, 24*time.Hour).Err(); err != nil {
		log.Printf("tips: failed to cache tip for user %s: %v", userID, err)
	}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
