package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalplan/backend/internal/models"
	"github.com/vitalplan/backend/internal/service"
	"github.com/vitalplan/backend/internal/testhelpers"
	"github.com/vitalplan/backend/internal/types"
)

func TestUpsertCreatesThenUpdates(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	prefs := service.NewPreferenceService(db)
	ctx := context.Background()
	userID := uuid.New()

	created, err := prefs.Upsert(ctx, userID, &types.MealPreferenceRequest{
		MealType:       "breakfast",
		PreferredTime:  "08:00",
		CaloriesTarget: 400,
	})
	require.NoError(t, err)
	assert.Equal(t, 400, created.CaloriesTarget)
	assert.Equal(t, "any", created.PreferredCuisine)

	updated, err := prefs.Upsert(ctx, userID, &types.MealPreferenceRequest{
		MealType:         "breakfast",
		CaloriesTarget:   500,
		PreferredCuisine: "mediterranean",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 500, updated.CaloriesTarget)
	assert.Equal(t, "mediterranean", updated.PreferredCuisine)

	// Still exactly one row for the pair.
	list, err := prefs.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpsertClampsTargets(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	prefs := service.NewPreferenceService(db)
	ctx := context.Background()

	pref, err := prefs.Upsert(ctx, uuid.New(), &types.MealPreferenceRequest{
		MealType:       "dinner",
		CaloriesTarget: 5000,
		ProteinTarget:  999,
		CarbsTarget:    999,
		FatTarget:      999,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MaxCaloriesTarget, pref.CaloriesTarget)
	assert.Equal(t, models.MaxProteinTarget, pref.ProteinTarget)
	assert.Equal(t, models.MaxCarbsTarget, pref.CarbsTarget)
	assert.Equal(t, models.MaxFatTarget, pref.FatTarget)
}

func TestUpsertRejectsInvalidMealType(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	prefs := service.NewPreferenceService(db)

	_, err := prefs.Upsert(context.Background(), uuid.New(), &types.MealPreferenceRequest{
		MealType: "brunch",
	})
	assert.Error(t, err)
}

func TestValidateForGeneration(t *testing.T) {
	prefs := service.NewPreferenceService(nil)

	err := prefs.ValidateForGeneration(nil)
	assert.ErrorIs(t, err, service.ErrNoGenerationTargets)

	err = prefs.ValidateForGeneration([]models.MealPreference{
		{MealType: "lunch"},
	})
	assert.ErrorIs(t, err, service.ErrNoGenerationTargets)

	err = prefs.ValidateForGeneration([]models.MealPreference{
		{MealType: "lunch"},
		{MealType: "dinner", ProteinTarget: 40},
	})
	assert.NoError(t, err)
}
