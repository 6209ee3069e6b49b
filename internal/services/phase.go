package services

import (
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

type Phase string

const (
	PhaseNone       Phase = "none"
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulation  Phase = "ovulation"
	PhaseLuteal     Phase = "luteal"
	// PhasePredicted marks a forecast period day. Calendar coloring only.
	PhasePredicted Phase = "predicted"
)

// Label returns the capitalized phase name used by the recipe catalog and
// stored in meal slot snapshots.
func (phase Phase) Label() string {
	switch phase {
	case PhaseMenstrual:
		return "Menstrual"
	case PhaseFollicular:
		return "Follicular"
	case PhaseOvulation:
		return "Ovulation"
	case PhaseLuteal:
		return "Luteal"
	case PhasePredicted:
		return "Predicted"
	default:
		return "None"
	}
}

// ClassifyPhase maps a calendar date to a cycle phase. Rules apply in order:
// recorded period days, the predicted next period window, then the cycle day
// counted from the most recent recorded start.
func ClassifyPhase(date time.Time, history []models.PeriodRecord) Phase {
	if len(history) == 0 {
		return PhaseNone
	}

	sorted := SortHistory(history)
	day := dateOnly(date)

	for _, record := range sorted {
		if betweenCalendarDaysInclusive(day, record.StartDate, record.EndDate) {
			return PhaseMenstrual
		}
	}

	if predicted, ok := PredictNextPeriod(sorted); ok {
		if betweenCalendarDaysInclusive(day, predicted.StartDate, predicted.EndDate) {
			return PhasePredicted
		}
	}

	cycleDay := calendarDaysBetween(sorted[0].StartDate, day) + 1
	if cycleDay < 1 {
		return PhaseNone
	}
	if cycleDay >= AverageCycleLength(sorted) {
		return PhaseNone
	}
	return phaseForCycleDay(cycleDay)
}

// ClassifyForMatching narrows ClassifyPhase to the four phases recipes are
// tagged with. Predicted and unknown days fall back to menstrual.
func ClassifyForMatching(date time.Time, history []models.PeriodRecord) Phase {
	return MatchingPhase(ClassifyPhase(date, history))
}

func MatchingPhase(phase Phase) Phase {
	switch phase {
	case PhasePredicted, PhaseNone:
		return PhaseMenstrual
	default:
		return phase
	}
}

func phaseForCycleDay(cycleDay int) Phase {
	switch {
	case cycleDay >= 1 && cycleDay <= 5:
		return PhaseMenstrual
	case cycleDay >= 6 && cycleDay <= 13:
		return PhaseFollicular
	case cycleDay >= 14 && cycleDay <= 16:
		return PhaseOvulation
	case cycleDay >= 17:
		return PhaseLuteal
	default:
		return PhaseNone
	}
}
