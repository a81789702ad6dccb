package planner

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the wire format for day-entry dates.
const DateLayout = "2006-01-02"

// RawPlan is the unvalidated candidate plan as returned by the generation
// service. Fields may be missing, duplicated or out of range; Normalize
// turns it into a CanonicalPlan.
type RawPlan struct {
	Days []RawDayEntry `json:"meal_plan"`
}

// RawDayEntry is one day of a RawPlan. The date is kept as the raw string
// so unparseable values can be skipped rather than failing the decode.
type RawDayEntry struct {
	Date  string    `json:"date"`
	Meals []RawMeal `json:"meals"`
}

// RawMeal is one meal of a raw day entry.
type RawMeal struct {
	Name        string          `json:"name"`
	MealType    string          `json:"meal_type"`
	Ingredients []RawIngredient `json:"ingredients"`
	Calories    float64         `json:"calories"`
	Protein     float64         `json:"protein"`
	Carbs       float64         `json:"carbs"`
	Fat         float64         `json:"fat"`
}

// RawIngredient is a single ingredient occurrence. Unknown fields are
// retained verbatim in Extra so future service output survives a
// normalize/persist round trip.
type RawIngredient struct {
	Name     string
	Quantity float64
	Unit     string
	Extra    map[string]json.RawMessage
}

// UnmarshalJSON accepts quantity as either a JSON number or a numeric
// string, and keeps any unrecognized keys.
func (i *RawIngredient) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, val := range fields {
		switch key {
		case "name":
			if err := json.Unmarshal(val, &i.Name); err != nil {
				return fmt.Errorf("ingredient name: %w", err)
			}
		case "quantity":
			qty, err := parseQuantity(val)
			if err != nil {
				return err
			}
			i.Quantity = qty
		case "unit":
			if err := json.Unmarshal(val, &i.Unit); err != nil {
				return fmt.Errorf("ingredient unit: %w", err)
			}
		default:
			if i.Extra == nil {
				i.Extra = make(map[string]json.RawMessage)
			}
			i.Extra[key] = val
		}
	}
	return nil
}

// MarshalJSON writes the known fields plus any preserved extras.
func (i RawIngredient) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(i.Extra)+3)
	for key, val := range i.Extra {
		out[key] = val
	}
	out["name"] = i.Name
	out["quantity"] = i.Quantity
	out["unit"] = i.Unit
	return json.Marshal(out)
}

func parseQuantity(raw json.RawMessage) (float64, error) {
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num, nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		num, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return 0, fmt.Errorf("ingredient quantity %q: %w", str, err)
		}
		return num, nil
	}
	return 0, fmt.Errorf("invalid ingredient quantity %s", string(raw))
}

// CanonicalPlan is the validated, range-clamped, date-sorted meal plan.
// Start/End are derived from the day entries, never supplied independently.
type CanonicalPlan struct {
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	Days      []DayEntry `json:"meal_plan"`
}

// DayEntry is one day of a CanonicalPlan.
type DayEntry struct {
	Date  time.Time `json:"date"`
	Meals []Meal    `json:"meals"`
}

// Meal is a single normalized meal with clamped macros.
type Meal struct {
	Name        string          `json:"name"`
	MealType    string          `json:"meal_type,omitempty"`
	Ingredients []RawIngredient `json:"ingredients"`
	Calories    int             `json:"calories"`
	Protein     int             `json:"protein"`
	Carbs       int             `json:"carbs"`
	Fat         int             `json:"fat"`
}

// ShoppingListItem is one consolidated line of a shopping list.
type ShoppingListItem struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

// ShoppingList is the ingredient aggregate derived from a CanonicalPlan,
// ordered by first appearance.
type ShoppingList []ShoppingListItem
