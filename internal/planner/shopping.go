package planner

import "strings"

// DeriveShoppingList aggregates every ingredient occurrence across the
// plan into a consolidated list. Occurrences group by a case-insensitive
// trimmed ingredient key; quantities sum only when units match, so "2
// tbsp olive oil" and "1 cup olive oil" stay separate line items. Units
// are never converted.
//
// The list preserves insertion order of first appearance. The function
// is pure and total: an empty plan yields an empty list.
func DeriveShoppingList(plan *CanonicalPlan) ShoppingList {
	list := ShoppingList{}
	if plan == nil {
		return list
	}

	type lineKey struct {
		ingredient string
		unit       string
	}
	index := make(map[lineKey]int)

	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			for _, ing := range meal.Ingredients {
				name := strings.TrimSpace(ing.Name)
				if name == "" {
					continue
				}
				key := lineKey{
					ingredient: strings.ToLower(name),
					unit:       strings.ToLower(strings.TrimSpace(ing.Unit)),
				}
				if pos, ok := index[key]; ok {
					list[pos].Quantity += ing.Quantity
					continue
				}
				index[key] = len(list)
				list = append(list, ShoppingListItem{
					Ingredient: name,
					Quantity:   ing.Quantity,
					Unit:       strings.TrimSpace(ing.Unit),
				})
			}
		}
	}

	return list
}
