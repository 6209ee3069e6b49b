package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/pantrycycle/internal/models"
)

const DefaultPlanningHorizonWeeks = 8

// BlockOverlap names two blocks, by list index, whose ranges intersect.
type BlockOverlap struct {
	First  int
	Second int
}

func SundayOfWeek(date time.Time) time.Time {
	day := dateOnly(date)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func SaturdayOfWeek(sunday time.Time) time.Time {
	return endOfDay(dateOnly(sunday).AddDate(0, 0, 6))
}

func NewWeekBlock(dateInWeek time.Time) models.WeekBlock {
	start := SundayOfWeek(dateInWeek)
	return models.WeekBlock{
		ID:        uuid.NewString(),
		StartDate: start,
		EndDate:   SaturdayOfWeek(start),
		Meals:     map[int][]models.MealSlotAssignment{},
	}
}

// FindBlockForDate scans blocks in list order and returns the first one whose
// range contains date. Overlapping blocks are not ranked; list order wins.
func FindBlockForDate(date time.Time, blocks []models.WeekBlock) (models.WeekBlock, int, bool) {
	for index, block := range blocks {
		start := dateOnly(block.StartDate)
		end := endOfDay(block.EndDate)
		if !date.Before(start) && !date.After(end) {
			return block, index, true
		}
	}
	return models.WeekBlock{}, -1, false
}

// ListAvailableWeeks enumerates the Sundays of the next horizonWeeks weeks,
// starting with the current one. A week is left out only when some block
// starts on exactly that Sunday; a block that merely overlaps it does not
// count.
func ListAvailableWeeks(blocks []models.WeekBlock, today time.Time, horizonWeeks int) []time.Time {
	if horizonWeeks <= 0 {
		horizonWeeks = DefaultPlanningHorizonWeeks
	}

	taken := make(map[string]bool, len(blocks))
	for _, block := range blocks {
		taken[dateOnly(block.StartDate).Format("2006-01-02")] = true
	}

	current := SundayOfWeek(today)
	weeks := make([]time.Time, 0, horizonWeeks)
	for offset := 0; offset < horizonWeeks; offset++ {
		candidate := current.AddDate(0, 0, 7*offset)
		if taken[candidate.Format("2006-01-02")] {
			continue
		}
		weeks = append(weeks, candidate)
	}
	return weeks
}

// FindOverlappingBlocks reports every pair of blocks whose ranges intersect.
// Blocks are allowed to overlap; callers decide whether to warn.
func FindOverlappingBlocks(blocks []models.WeekBlock) []BlockOverlap {
	overlaps := make([]BlockOverlap, 0)
	for i := 0; i < len(blocks); i++ {
		firstStart, firstEnd := dateOnly(blocks[i].StartDate), endOfDay(blocks[i].EndDate)
		for j := i + 1; j < len(blocks); j++ {
			secondStart, secondEnd := dateOnly(blocks[j].StartDate), endOfDay(blocks[j].EndDate)
			if !firstEnd.Before(secondStart) && !secondEnd.Before(firstStart) {
				overlaps = append(overlaps, BlockOverlap{First: i, Second: j})
			}
		}
	}
	return overlaps
}

func DeleteWeekBlock(blocks []models.WeekBlock, id string) ([]models.WeekBlock, bool) {
	remaining := make([]models.WeekBlock, 0, len(blocks))
	removed := false
	for _, block := range blocks {
		if block.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, block)
	}
	return remaining, removed
}
