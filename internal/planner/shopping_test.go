package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalplan/backend/internal/planner"
)

func planWithMeals(meals ...planner.Meal) *planner.CanonicalPlan {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &planner.CanonicalPlan{
		StartDate: date,
		EndDate:   date,
		Days:      []planner.DayEntry{{Date: date, Meals: meals}},
	}
}

func ing(name string, qty float64, unit string) planner.RawIngredient {
	return planner.RawIngredient{Name: name, Quantity: qty, Unit: unit}
}

func TestDeriveSumsMatchingUnits(t *testing.T) {
	plan := planWithMeals(
		planner.Meal{Name: "Bread", Ingredients: []planner.RawIngredient{ing("flour", 2, "cups")}},
		planner.Meal{Name: "Pancakes", Ingredients: []planner.RawIngredient{ing("flour", 1, "cups")}},
	)

	list := planner.DeriveShoppingList(plan)
	require.Len(t, list, 1)
	assert.Equal(t, "flour", list[0].Ingredient)
	assert.Equal(t, 3.0, list[0].Quantity)
	assert.Equal(t, "cups", list[0].Unit)
}

func TestDeriveKeepsDifferingUnitsSeparate(t *testing.T) {
	plan := planWithMeals(
		planner.Meal{Name: "Salad", Ingredients: []planner.RawIngredient{ing("olive oil", 2, "tbsp")}},
		planner.Meal{Name: "Pasta", Ingredients: []planner.RawIngredient{ing("olive oil", 1, "cup")}},
	)

	list := planner.DeriveShoppingList(plan)
	require.Len(t, list, 2)
	assert.Equal(t, "tbsp", list[0].Unit)
	assert.Equal(t, 2.0, list[0].Quantity)
	assert.Equal(t, "cup", list[1].Unit)
	assert.Equal(t, 1.0, list[1].Quantity)
}

func TestDeriveGroupsCaseInsensitive(t *testing.T) {
	plan := planWithMeals(
		planner.Meal{Ingredients: []planner.RawIngredient{ing("Chicken Breast", 1, "lb")}},
		planner.Meal{Ingredients: []planner.RawIngredient{ing("  chicken breast ", 0.5, "lb")}},
	)

	list := planner.DeriveShoppingList(plan)
	require.Len(t, list, 1)
	// Display name comes from the first occurrence.
	assert.Equal(t, "Chicken Breast", list[0].Ingredient)
	assert.Equal(t, 1.5, list[0].Quantity)
}

func TestDerivePreservesFirstAppearanceOrder(t *testing.T) {
	plan := planWithMeals(
		planner.Meal{Ingredients: []planner.RawIngredient{
			ing("eggs", 3, ""),
			ing("milk", 1, "cup"),
		}},
		planner.Meal{Ingredients: []planner.RawIngredient{
			ing("butter", 2, "tbsp"),
			ing("eggs", 2, ""),
		}},
	)

	list := planner.DeriveShoppingList(plan)
	require.Len(t, list, 3)
	assert.Equal(t, "eggs", list[0].Ingredient)
	assert.Equal(t, 5.0, list[0].Quantity)
	assert.Equal(t, "milk", list[1].Ingredient)
	assert.Equal(t, "butter", list[2].Ingredient)
}

func TestDeriveEmptyAndNilPlans(t *testing.T) {
	assert.Empty(t, planner.DeriveShoppingList(nil))
	assert.Empty(t, planner.DeriveShoppingList(&planner.CanonicalPlan{}))
	assert.Empty(t, planner.DeriveShoppingList(planWithMeals(planner.Meal{Name: "Water"})))
}

func TestDeriveIsIdempotent(t *testing.T) {
	plan := planWithMeals(
		planner.Meal{Ingredients: []planner.RawIngredient{
			ing("rice", 2, "cups"),
			ing("Rice", 1, "cups"),
			ing("soy sauce", 1, "tbsp"),
		}},
	)

	first := planner.DeriveShoppingList(plan)
	second := planner.DeriveShoppingList(plan)
	assert.Equal(t, first, second)
}
