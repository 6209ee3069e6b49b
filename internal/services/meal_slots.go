package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

// AssignMealSlot binds meal on date to recipeID, or reserves it when recipeID
// is nil. The slot's phase is captured now from the cycle history. A week
// block is synthesized when no block covers date. blocks is not modified;
// the returned slice shares untouched blocks with it.
func AssignMealSlot(date time.Time, meal models.MealType, recipeID *uint, history []models.PeriodRecord, blocks []models.WeekBlock) []models.WeekBlock {
	slot := models.MealSlotAssignment{
		Meal:     meal,
		RecipeID: copyRecipeID(recipeID),
		Phase:    ClassifyForMatching(date, history).Label(),
	}
	dayOfWeek := int(date.Weekday())

	updated := make([]models.WeekBlock, len(blocks), len(blocks)+1)
	copy(updated, blocks)

	block, index, found := FindBlockForDate(date, blocks)
	if !found {
		created := NewWeekBlock(date)
		created.Meals[dayOfWeek] = []models.MealSlotAssignment{slot}
		return append(updated, created)
	}

	meals := cloneMeals(block.Meals)
	daySlots := append([]models.MealSlotAssignment{}, meals[dayOfWeek]...)
	replaced := false
	for i := range daySlots {
		if daySlots[i].Meal == meal {
			daySlots[i].RecipeID = slot.RecipeID
			daySlots[i].Phase = slot.Phase
			replaced = true
			break
		}
	}
	if !replaced {
		daySlots = append(daySlots, slot)
	}
	meals[dayOfWeek] = daySlots

	block.Meals = meals
	updated[index] = block
	return updated
}

// RemoveMealSlot drops meal from the day covering date. An emptied day keeps
// its empty list and an emptied block is kept; blocks are only deleted on
// request. The bool reports whether a covering block was found.
func RemoveMealSlot(date time.Time, meal models.MealType, blocks []models.WeekBlock) ([]models.WeekBlock, bool) {
	updated := make([]models.WeekBlock, len(blocks))
	copy(updated, blocks)

	block, index, found := FindBlockForDate(date, blocks)
	if !found {
		return updated, false
	}

	dayOfWeek := int(date.Weekday())
	meals := cloneMeals(block.Meals)
	kept := make([]models.MealSlotAssignment, 0, len(meals[dayOfWeek]))
	for _, slot := range meals[dayOfWeek] {
		if slot.Meal != meal {
			kept = append(kept, slot)
		}
	}
	meals[dayOfWeek] = kept

	block.Meals = meals
	updated[index] = block
	return updated, true
}

// SortMealSlots orders a day's slots breakfast, lunch, dinner for display.
func SortMealSlots(slots []models.MealSlotAssignment) []models.MealSlotAssignment {
	sorted := make([]models.MealSlotAssignment, 0, len(slots))
	sorted = append(sorted, slots...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.MealOrder(sorted[i].Meal) < models.MealOrder(sorted[j].Meal)
	})
	return sorted
}

func cloneMeals(meals map[int][]models.MealSlotAssignment) map[int][]models.MealSlotAssignment {
	cloned := make(map[int][]models.MealSlotAssignment, len(meals)+1)
	for day, slots := range meals {
		cloned[day] = slots
	}
	return cloned
}

func copyRecipeID(recipeID *uint) *uint {
	if recipeID == nil {
		return nil
	}
	value := *recipeID
	return &value
}
