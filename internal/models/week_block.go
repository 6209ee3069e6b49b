package models

import "time"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

var mealOrder = map[MealType]int{
	MealBreakfast: 1,
	MealLunch:     2,
	MealDinner:    3,
}

// MealOrder returns the display rank of a meal type; unknown types sort last.
func MealOrder(meal MealType) int {
	if rank, ok := mealOrder[meal]; ok {
		return rank
	}
	return len(mealOrder) + 1
}

func IsValidMealType(meal MealType) bool {
	_, ok := mealOrder[meal]
	return ok
}

// MealSlotAssignment binds one meal of one day to a recipe. A nil RecipeID
// reserves the slot without a chosen recipe. Phase is captured when the slot
// is assigned and is never recomputed.
type MealSlotAssignment struct {
	Meal     MealType `json:"meal"`
	RecipeID *uint    `json:"recipeId"`
	Phase    string   `json:"phase"`
}

// WeekBlock covers one Sunday through Saturday range. Meals is keyed by
// day of week, 0 (Sunday) to 6 (Saturday).
type WeekBlock struct {
	ID        string                       `json:"id"`
	StartDate time.Time                    `json:"startDate"`
	EndDate   time.Time                    `json:"endDate"`
	Meals     map[int][]MealSlotAssignment `json:"meals"`
}

// LegacyWeeklyTemplate is the pre-week-block default plan: day of week to meal types.
type LegacyWeeklyTemplate map[int][]MealType
