package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/internal/planner"
	"github.com/vitalplan/backend/internal/service"
	"github.com/vitalplan/backend/internal/testhelpers"
)

func testPlan() (*planner.CanonicalPlan, planner.ShoppingList) {
	day1 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	plan := &planner.CanonicalPlan{
		StartDate: day1,
		EndDate:   day2,
		Days: []planner.DayEntry{
			{
				Date: day1,
				Meals: []planner.Meal{
					{
						Name:     "Oatmeal",
						MealType: "breakfast",
						Ingredients: []planner.RawIngredient{
							{Name: "oats", Quantity: 1, Unit: "cup"},
						},
						Calories: 350,
					},
				},
			},
			{
				Date: day2,
				Meals: []planner.Meal{
					{
						Name:     "Salad",
						MealType: "lunch",
						Ingredients: []planner.RawIngredient{
							{Name: "lettuce", Quantity: 1, Unit: "head"},
						},
						Calories: 200,
					},
				},
			},
		},
	}
	list := planner.ShoppingList{
		{Ingredient: "oats", Quantity: 1, Unit: "cup"},
		{Ingredient: "lettuce", Quantity: 1, Unit: "head"},
	}
	return plan, list
}

func TestSaveAndFindRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	plans := service.NewPlanService(db)
	ctx := context.Background()
	userID := uuid.New()

	plan, list := testPlan()
	planID, err := plans.Save(ctx, userID, plan, list)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, planID)

	row, err := plans.Find(ctx, planID, userID)
	require.NoError(t, err)

	decoded, decodedList, err := service.DecodePlan(row)
	require.NoError(t, err)
	require.Len(t, decoded.Days, 2)
	assert.True(t, decoded.Days[0].Date.Before(decoded.Days[1].Date))
	assert.Equal(t, "Oatmeal", decoded.Days[0].Meals[0].Name)
	assert.Equal(t, list, decodedList)
}

func TestFindEnforcesOwnership(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	plans := service.NewPlanService(db)
	ctx := context.Background()
	owner := uuid.New()

	plan, list := testPlan()
	planID, err := plans.Save(ctx, owner, plan, list)
	require.NoError(t, err)

	// A foreign plan id behaves exactly like a missing one.
	_, err = plans.Find(ctx, planID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = plans.Find(ctx, uuid.New(), owner)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListNewestFirst(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	plans := service.NewPlanService(db)
	ctx := context.Background()
	userID := uuid.New()

	plan, list := testPlan()
	first, err := plans.Save(ctx, userID, plan, list)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := plans.Save(ctx, userID, plan, list)
	require.NoError(t, err)

	rows, err := plans.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second, rows[0].ID)
	assert.Equal(t, first, rows[1].ID)
}

func TestListScopedToUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	plans := service.NewPlanService(db)
	ctx := context.Background()

	plan, list := testPlan()
	_, err := plans.Save(ctx, uuid.New(), plan, list)
	require.NoError(t, err)

	rows, err := plans.List(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
