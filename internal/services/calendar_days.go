package services

import (
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

// CalendarDayState carries the two independent signals for one grid cell:
// the cycle phase of the date and the meal slots of the covering block.
// Display code decides how to combine them.
type CalendarDayState struct {
	Date        time.Time                   `json:"-"`
	DateString  string                      `json:"date"`
	Day         int                         `json:"day"`
	InMonth     bool                        `json:"in_month"`
	IsToday     bool                        `json:"is_today"`
	Phase       Phase                       `json:"phase"`
	IsOvulation bool                        `json:"is_ovulation"`
	WeekBlockID string                      `json:"week_block_id,omitempty"`
	Meals       []models.MealSlotAssignment `json:"meals"`
}

// BuildCalendarDayStates lays out the Sunday-aligned grid around monthStart.
func BuildCalendarDayStates(monthStart time.Time, history []models.PeriodRecord, blocks []models.WeekBlock, today time.Time) []CalendarDayState {
	monthStart = dateOnly(monthStart)
	monthStart = monthStart.AddDate(0, 0, 1-monthStart.Day())
	gridStart, gridEnd := CalendarGridRange(monthStart)

	sorted := SortHistory(history)
	ovulationKey := ""
	if ovulation, ok := PredictOvulation(sorted); ok {
		ovulationKey = ovulation.Format("2006-01-02")
	}
	todayKey := dateOnly(today).Format("2006-01-02")

	days := make([]CalendarDayState, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		state := CalendarDayState{
			Date:        day,
			DateString:  key,
			Day:         day.Day(),
			InMonth:     day.Month() == monthStart.Month(),
			IsToday:     key == todayKey,
			Phase:       ClassifyPhase(day, sorted),
			IsOvulation: key == ovulationKey,
			Meals:       []models.MealSlotAssignment{},
		}
		if block, _, found := FindBlockForDate(day, blocks); found {
			state.WeekBlockID = block.ID
			state.Meals = SortMealSlots(block.Meals[int(day.Weekday())])
		}
		days = append(days, state)
	}
	return days
}

// CalendarGridRange returns the first Sunday and last Saturday of the grid
// that shows the month beginning at monthStart.
func CalendarGridRange(monthStart time.Time) (time.Time, time.Time) {
	monthEnd := monthStart.AddDate(0, 1, -1)
	return SundayOfWeek(monthStart), dateOnly(monthEnd).AddDate(0, 0, 6-int(monthEnd.Weekday()))
}
