package services

import (
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

type CycleOverview struct {
	HasData               bool      `json:"has_data"`
	CycleDay              int       `json:"cycle_day"`
	Phase                 Phase     `json:"phase"`
	MatchingPhase         string    `json:"matching_phase"`
	Focus                 string    `json:"focus"`
	AverageCycleLength    int       `json:"average_cycle_length"`
	AveragePeriodDuration float64   `json:"average_period_duration"`
	LastPeriodStart       time.Time `json:"last_period_start"`
	NextPeriodStart       time.Time `json:"next_period_start"`
	NextPeriodEnd         time.Time `json:"next_period_end"`
	OvulationDate         time.Time `json:"ovulation_date"`
	DaysUntilNextPeriod   int       `json:"days_until_next_period"`
}

func BuildCycleOverview(history []models.PeriodRecord, today time.Time) CycleOverview {
	sorted := SortHistory(history)
	phase := ClassifyPhase(today, sorted)
	overview := CycleOverview{
		HasData:               len(sorted) > 0,
		Phase:                 phase,
		MatchingPhase:         ClassifyForMatching(today, sorted).Label(),
		Focus:                 phaseFocus(phase),
		AverageCycleLength:    AverageCycleLength(sorted),
		AveragePeriodDuration: AveragePeriodDuration(sorted),
	}
	if !overview.HasData {
		return overview
	}

	overview.LastPeriodStart = dateOnly(sorted[0].StartDate)
	if cycleDay := calendarDaysBetween(overview.LastPeriodStart, today) + 1; cycleDay >= 1 {
		overview.CycleDay = cycleDay
	}
	if predicted, ok := PredictNextPeriod(sorted); ok {
		overview.NextPeriodStart = predicted.StartDate
		overview.NextPeriodEnd = predicted.EndDate
		overview.DaysUntilNextPeriod = calendarDaysBetween(today, predicted.StartDate)
	}
	if ovulation, ok := PredictOvulation(sorted); ok {
		overview.OvulationDate = ovulation
	}
	return overview
}

func phaseFocus(phase Phase) string {
	switch phase {
	case PhaseMenstrual:
		return "Focus on iron-rich foods and stay hydrated."
	case PhaseFollicular:
		return "Great time for high-energy activities and trying new foods."
	case PhaseOvulation:
		return "Enjoy complex carbs and protein-rich meals."
	case PhaseLuteal:
		return "Focus on magnesium and B-vitamin rich foods."
	case PhasePredicted:
		return "Your next period is approaching soon."
	default:
		return "Track your period to get personalized meal recommendations."
	}
}
