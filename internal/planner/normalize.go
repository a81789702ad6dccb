package planner

import (
	"log"
	"sort"
	"time"

	"github.com/vitalplan/backend/internal/models"
)

// Normalize validates and reshapes a raw candidate plan into the
// canonical schema. It is a pure function of its input: no clock, no
// randomness.
//
// Day entries with unparseable dates are skipped (not fatal) unless
// nothing survives, in which case ErrEmptyPlan is returned. Duplicate
// dates keep the first occurrence. Macro values are clamped into their
// valid ranges rather than rejected.
func Normalize(raw *RawPlan) (*CanonicalPlan, error) {
	if raw == nil {
		return nil, ErrEmptyPlan
	}

	seen := make(map[string]bool, len(raw.Days))
	days := make([]DayEntry, 0, len(raw.Days))

	for _, entry := range raw.Days {
		date, err := time.Parse(DateLayout, entry.Date)
		if err != nil {
			log.Printf("normalize: skipping day entry with unparseable date %q: %v", entry.Date, err)
			continue
		}

		key := date.Format(DateLayout)
		if seen[key] {
			log.Printf("normalize: duplicate day entry for %s, keeping first occurrence", key)
			continue
		}
		seen[key] = true

		meals := make([]Meal, 0, len(entry.Meals))
		for _, m := range entry.Meals {
			meals = append(meals, normalizeMeal(m))
		}

		days = append(days, DayEntry{Date: date, Meals: meals})
	}

	if len(days) == 0 {
		return nil, ErrEmptyPlan
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return &CanonicalPlan{
		StartDate: days[0].Date,
		EndDate:   days[len(days)-1].Date,
		Days:      days,
	}, nil
}

func normalizeMeal(m RawMeal) Meal {
	return Meal{
		Name:        m.Name,
		MealType:    m.MealType,
		Ingredients: m.Ingredients,
		Calories:    clampMacro(m.Calories, models.MaxCaloriesTarget),
		Protein:     clampMacro(m.Protein, models.MaxProteinTarget),
		Carbs:       clampMacro(m.Carbs, models.MaxCarbsTarget),
		Fat:         clampMacro(m.Fat, models.MaxFatTarget),
	}
}

func clampMacro(v float64, max int) int {
	if v < 0 {
		return 0
	}
	if v > float64(max) {
		return max
	}
	return int(v)
}
