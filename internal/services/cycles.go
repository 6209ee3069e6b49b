package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

// SortHistory returns a copy of history ordered by start date, most recent first.
func SortHistory(history []models.PeriodRecord) models.PeriodHistory {
	sorted := make(models.PeriodHistory, 0, len(history))
	sorted = append(sorted, history...)
	sort.SliceStable(sorted, func(i, j int) bool {
		left := dateOnly(sorted[i].StartDate)
		right := dateOnly(sorted[j].StartDate)
		if left.Equal(right) {
			return sorted[i].ID > sorted[j].ID
		}
		return left.After(right)
	})
	return sorted
}

// AverageCycleLength is the rounded mean gap in days between consecutive
// period starts. Fewer than two records yield the 28 day default.
func AverageCycleLength(history []models.PeriodRecord) int {
	if len(history) < 2 {
		return models.DefaultCycleLength
	}

	sorted := SortHistory(history)
	gaps := make([]int, 0, len(sorted)-1)
	for i := 0; i < len(sorted)-1; i++ {
		gaps = append(gaps, absInt(calendarDaysBetween(sorted[i+1].StartDate, sorted[i].StartDate)))
	}
	return int(averageInts(gaps) + 0.5)
}

// AveragePeriodDuration is the mean recorded duration, 5 days when history is empty.
func AveragePeriodDuration(history []models.PeriodRecord) float64 {
	if len(history) == 0 {
		return models.DefaultPeriodDuration
	}

	durations := make([]int, 0, len(history))
	for _, record := range history {
		durations = append(durations, record.Duration)
	}
	return averageInts(durations)
}

// ComputeDuration counts the calendar days from start to end inclusive,
// so a period starting and ending on the same day lasts one day.
func ComputeDuration(start time.Time, end time.Time) int {
	return calendarDaysBetween(start, end) + 1
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
