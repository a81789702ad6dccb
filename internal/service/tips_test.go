package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalplan/backend/internal/models"
	"github.com/vitalplan/backend/internal/service"
	"github.com/vitalplan/backend/internal/testhelpers"
)

type fakeTipGenerator struct {
	calls int
	err   error
}

func (f *fakeTipGenerator) GenerateTip(ctx context.Context, profile *models.WellnessProfile) (*service.TipData, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &service.TipData{Tip: "Take a walk", Quote: "One step at a time", Category: "fitness"}, nil
}

func TestDailyTipGeneratesOncePerDay(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	gen := &fakeTipGenerator{}
	tips := service.NewTipService(db, nil, gen)
	ctx := context.Background()
	userID := uuid.New()
	profile := &models.WellnessProfile{Goals: "general fitness"}

	first, err := tips.DailyTip(ctx, userID, profile)
	require.NoError(t, err)
	assert.Equal(t, "Take a walk", first.TipContent)
	assert.Equal(t, 1, gen.calls)

	// Second call the same day reuses the stored tip.
	second, err := tips.DailyTip(ctx, userID, profile)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, gen.calls)
}

func TestDailyTipGeneratorFailure(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	gen := &fakeTipGenerator{err: errors.New("upstream down")}
	tips := service.NewTipService(db, nil, gen)

	_, err := tips.DailyTip(context.Background(), uuid.New(), &models.WellnessProfile{})
	assert.Error(t, err)
}

func TestMarkViewed(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	gen := &fakeTipGenerator{}
	tips := service.NewTipService(db, nil, gen)
	ctx := context.Background()
	userID := uuid.New()

	tip, err := tips.DailyTip(ctx, userID, &models.WellnessProfile{})
	require.NoError(t, err)
	require.False(t, tip.IsViewed)

	require.NoError(t, tips.MarkViewed(ctx, tip.ID, userID))

	var stored models.WellnessTip
	require.NoError(t, db.First(&stored, "id = ?", tip.ID).Error)
	assert.True(t, stored.IsViewed)
}
