package services

import (
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

// ovulationOffsetDays is counted from the last period start and does not
// scale with the average cycle length.
const ovulationOffsetDays = 14

type PredictedPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func PredictNextPeriod(history []models.PeriodRecord) (PredictedPeriod, bool) {
	if len(history) == 0 {
		return PredictedPeriod{}, false
	}

	sorted := SortHistory(history)
	start := dateOnly(sorted[0].StartDate).AddDate(0, 0, AverageCycleLength(sorted))
	duration := int(AveragePeriodDuration(sorted) + 0.5)
	return PredictedPeriod{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, duration),
	}, true
}

func PredictOvulation(history []models.PeriodRecord) (time.Time, bool) {
	if len(history) == 0 {
		return time.Time{}, false
	}

	sorted := SortHistory(history)
	return dateOnly(sorted[0].StartDate).AddDate(0, 0, ovulationOffsetDays), true
}
