package planner_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalplan/backend/internal/planner"
)

func day(date string, meals ...planner.RawMeal) planner.RawDayEntry {
	return planner.RawDayEntry{Date: date, Meals: meals}
}

func TestNormalizeClampsMacros(t *testing.T) {
	raw := &planner.RawPlan{Days: []planner.RawDayEntry{
		day("2024-01-01", planner.RawMeal{
			Name:     "Grilled salmon",
			MealType: "dinner",
			Calories: 2500,
			Protein:  250,
			Carbs:    -10,
			Fat:      120,
		}),
	}}

	plan, err := planner.Normalize(raw)
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
	require.Len(t, plan.Days[0].Meals, 1)

	meal := plan.Days[0].Meals[0]
	assert.Equal(t, 2000, meal.Calories)
	assert.Equal(t, 200, meal.Protein)
	assert.Equal(t, 0, meal.Carbs)
	assert.Equal(t, 100, meal.Fat)
}

func TestNormalizeDuplicateDatesKeepFirst(t *testing.T) {
	raw := &planner.RawPlan{Days: []planner.RawDayEntry{
		day("2024-01-01", planner.RawMeal{Name: "Oatmeal"}),
		day("2024-01-01", planner.RawMeal{Name: "Pancakes"}),
	}}

	plan, err := planner.Normalize(raw)
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
	require.Len(t, plan.Days[0].Meals, 1)
	assert.Equal(t, "Oatmeal", plan.Days[0].Meals[0].Name)
}

func TestNormalizeSkipsUnparseableDates(t *testing.T) {
	raw := &planner.RawPlan{Days: []planner.RawDayEntry{
		day("not-a-date", planner.RawMeal{Name: "Mystery"}),
		day("2024-01-02", planner.RawMeal{Name: "Soup"}),
	}}

	plan, err := planner.Normalize(raw)
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
	assert.Equal(t, "Soup", plan.Days[0].Meals[0].Name)
}

func TestNormalizeEmptyWhenNothingSurvives(t *testing.T) {
	raw := &planner.RawPlan{Days: []planner.RawDayEntry{
		day("??", planner.RawMeal{Name: "A"}),
		day("", planner.RawMeal{Name: "B"}),
	}}

	_, err := planner.Normalize(raw)
	assert.ErrorIs(t, err, planner.ErrEmptyPlan)

	_, err = planner.Normalize(&planner.RawPlan{})
	assert.ErrorIs(t, err, planner.ErrEmptyPlan)

	_, err = planner.Normalize(nil)
	assert.ErrorIs(t, err, planner.ErrEmptyPlan)
}

func TestNormalizeSortsAndDerivesDateRange(t *testing.T) {
	raw := &planner.RawPlan{Days: []planner.RawDayEntry{
		day("2024-01-03", planner.RawMeal{Name: "Curry"}),
		day("2024-01-01", planner.RawMeal{Name: "Toast"}),
	}}

	plan, err := planner.Normalize(raw)
	require.NoError(t, err)
	require.Len(t, plan.Days, 2)

	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan3 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	assert.True(t, plan.Days[0].Date.Equal(jan1))
	assert.True(t, plan.Days[1].Date.Equal(jan3))
	assert.True(t, plan.StartDate.Equal(jan1))
	assert.True(t, plan.EndDate.Equal(jan3))
}

func TestRawIngredientPreservesUnknownFields(t *testing.T) {
	var ing planner.RawIngredient
	err := json.Unmarshal([]byte(`{"name":"flour","quantity":"2","unit":"cups","brand":"stoneground"}`), &ing)
	require.NoError(t, err)

	assert.Equal(t, "flour", ing.Name)
	assert.Equal(t, 2.0, ing.Quantity)
	assert.Equal(t, "cups", ing.Unit)
	require.Contains(t, ing.Extra, "brand")

	out, err := json.Marshal(ing)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"brand":"stoneground"`)
}

func TestRawIngredientRejectsBadQuantity(t *testing.T) {
	var ing planner.RawIngredient
	err := json.Unmarshal([]byte(`{"name":"flour","quantity":"a pinch"}`), &ing)
	assert.Error(t, err)
}
