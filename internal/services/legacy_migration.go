package services

import (
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

type LegacyMigrationState string

const (
	LegacyMigrationNotNeeded LegacyMigrationState = "not_needed"
	LegacyMigrationPending   LegacyMigrationState = "pending"
	LegacyMigrationDone      LegacyMigrationState = "done"
)

// LegacyMigrationStateOf decides whether a profile still has to convert its
// default weekly template. Once any week block exists the migration is done
// for good.
func LegacyMigrationStateOf(template models.LegacyWeeklyTemplate, blocks []models.WeekBlock) LegacyMigrationState {
	if len(blocks) > 0 {
		return LegacyMigrationDone
	}
	if len(legacyTemplateDays(template)) == 0 {
		return LegacyMigrationNotNeeded
	}
	return LegacyMigrationPending
}

// LegacyMigrationWeekStart picks the earliest week in which none of the
// template's days lies in the past: this week when possible, otherwise the
// next one.
func LegacyMigrationWeekStart(template models.LegacyWeeklyTemplate, today time.Time) time.Time {
	thisWeek := SundayOfWeek(today)
	day := dateOnly(today)
	for _, dayOfWeek := range legacyTemplateDays(template) {
		if thisWeek.AddDate(0, 0, dayOfWeek).Before(day) {
			return thisWeek.AddDate(0, 0, 7)
		}
	}
	return thisWeek
}

// MigrateLegacyTemplate converts every (day, meal) pair of the template into
// a reserved slot of one new week block. It returns false when the template
// holds nothing to convert.
func MigrateLegacyTemplate(template models.LegacyWeeklyTemplate, history []models.PeriodRecord, today time.Time) (models.WeekBlock, bool) {
	days := legacyTemplateDays(template)
	if len(days) == 0 {
		return models.WeekBlock{}, false
	}

	block := NewWeekBlock(LegacyMigrationWeekStart(template, today))
	for _, dayOfWeek := range days {
		date := block.StartDate.AddDate(0, 0, dayOfWeek)
		phase := ClassifyForMatching(date, history).Label()

		seen := make(map[models.MealType]bool, len(template[dayOfWeek]))
		slots := make([]models.MealSlotAssignment, 0, len(template[dayOfWeek]))
		for _, meal := range template[dayOfWeek] {
			if !models.IsValidMealType(meal) || seen[meal] {
				continue
			}
			seen[meal] = true
			slots = append(slots, models.MealSlotAssignment{Meal: meal, Phase: phase})
		}
		block.Meals[dayOfWeek] = slots
	}
	return block, true
}

// legacyTemplateDays lists, in weekday order, the days holding at least one
// recognized meal type.
func legacyTemplateDays(template models.LegacyWeeklyTemplate) []int {
	days := make([]int, 0, 7)
	for dayOfWeek := 0; dayOfWeek < 7; dayOfWeek++ {
		for _, meal := range template[dayOfWeek] {
			if models.IsValidMealType(meal) {
				days = append(days, dayOfWeek)
				break
			}
		}
	}
	return days
}
