package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

func TestSundayOfWeek(t *testing.T) {
	for _, raw := range []string{"2024-01-07", "2024-01-08", "2024-01-10", "2024-01-13"} {
		got := SundayOfWeek(mustParseDay(t, raw).Add(15 * time.Hour))
		if got.Format("2006-01-02 15:04") != "2024-01-07 00:00" {
			t.Fatalf("expected Sunday 2024-01-07 for %s, got %s", raw, got.Format("2006-01-02 15:04"))
		}
	}
}

func TestSaturdayOfSundayRoundTrip(t *testing.T) {
	start := mustParseDay(t, "2023-12-20")
	for offset := 0; offset < 60; offset++ {
		day := start.AddDate(0, 0, offset)
		sunday := SundayOfWeek(day)
		saturday := SaturdayOfWeek(sunday)

		if sunday.Weekday() != time.Sunday {
			t.Fatalf("expected Sunday for %s, got %s", day.Format("2006-01-02"), sunday.Weekday())
		}
		if calendarDaysBetween(sunday, saturday) != 6 {
			t.Fatalf("expected Saturday 6 days after %s, got %s", sunday.Format("2006-01-02"), saturday.Format("2006-01-02"))
		}
		if saturday.Hour() != 23 || saturday.Minute() != 59 || saturday.Second() != 59 || saturday.Nanosecond() != int(999*time.Millisecond) {
			t.Fatalf("expected end of day, got %s", saturday.Format(time.RFC3339Nano))
		}
	}
}

func TestNewWeekBlockCoversSundayToSaturday(t *testing.T) {
	first := NewWeekBlock(mustParseDay(t, "2024-01-10"))
	second := NewWeekBlock(mustParseDay(t, "2024-01-10"))

	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", first.ID, second.ID)
	}
	if first.StartDate.Format("2006-01-02") != "2024-01-07" || first.EndDate.Format("2006-01-02") != "2024-01-13" {
		t.Fatalf("unexpected block range %s..%s", first.StartDate, first.EndDate)
	}
	if first.Meals == nil || len(first.Meals) != 0 {
		t.Fatalf("expected empty meals map, got %v", first.Meals)
	}
}

func TestFindBlockForDate(t *testing.T) {
	blocks := []models.WeekBlock{
		weekBlock(t, "a", "2024-01-07"),
		weekBlock(t, "b", "2024-01-21"),
	}

	block, index, found := FindBlockForDate(mustParseDay(t, "2024-01-13").Add(22*time.Hour), blocks)
	if !found || block.ID != "a" || index != 0 {
		t.Fatalf("expected block a for Saturday evening, got %q index=%d found=%v", block.ID, index, found)
	}

	block, index, found = FindBlockForDate(mustParseDay(t, "2024-01-21"), blocks)
	if !found || block.ID != "b" || index != 1 {
		t.Fatalf("expected block b for its Sunday, got %q index=%d found=%v", block.ID, index, found)
	}

	if _, index, found := FindBlockForDate(mustParseDay(t, "2024-01-16"), blocks); found || index != -1 {
		t.Fatal("expected no block for an unplanned week")
	}
}

func TestFindBlockForDateFirstListedOverlapWins(t *testing.T) {
	later := weekBlock(t, "later", "2024-01-07")
	shifted := models.WeekBlock{
		ID:        "shifted",
		StartDate: mustParseDay(t, "2024-01-03"),
		EndDate:   endOfDay(mustParseDay(t, "2024-01-09")),
	}

	block, _, found := FindBlockForDate(mustParseDay(t, "2024-01-08"), []models.WeekBlock{later, shifted})
	if !found || block.ID != "later" {
		t.Fatalf("expected first listed block, got %q", block.ID)
	}
	block, _, _ = FindBlockForDate(mustParseDay(t, "2024-01-08"), []models.WeekBlock{shifted, later})
	if block.ID != "shifted" {
		t.Fatalf("expected list order to decide, got %q", block.ID)
	}
}

func TestListAvailableWeeksExcludesOnlyExactSundayMatches(t *testing.T) {
	today := mustParseDay(t, "2024-01-10")
	blocks := []models.WeekBlock{
		weekBlock(t, "taken", "2024-01-14"),
		{
			ID:        "overlapping",
			StartDate: mustParseDay(t, "2024-01-16"),
			EndDate:   endOfDay(mustParseDay(t, "2024-01-22")),
		},
	}

	weeks := ListAvailableWeeks(blocks, today, 4)
	expected := []string{"2024-01-07", "2024-01-21", "2024-01-28"}
	if len(weeks) != len(expected) {
		t.Fatalf("expected %d weeks, got %d", len(expected), len(weeks))
	}
	for index, week := range weeks {
		if week.Format("2006-01-02") != expected[index] {
			t.Fatalf("expected %s at %d, got %s", expected[index], index, week.Format("2006-01-02"))
		}
	}
}

func TestListAvailableWeeksDefaultHorizon(t *testing.T) {
	weeks := ListAvailableWeeks(nil, mustParseDay(t, "2024-01-07"), 0)
	if len(weeks) != DefaultPlanningHorizonWeeks {
		t.Fatalf("expected %d weeks, got %d", DefaultPlanningHorizonWeeks, len(weeks))
	}
	if weeks[0].Format("2006-01-02") != "2024-01-07" || weeks[7].Format("2006-01-02") != "2024-02-25" {
		t.Fatalf("unexpected horizon %s..%s", weeks[0].Format("2006-01-02"), weeks[7].Format("2006-01-02"))
	}
}

func TestFindOverlappingBlocks(t *testing.T) {
	blocks := []models.WeekBlock{
		weekBlock(t, "a", "2024-01-07"),
		weekBlock(t, "b", "2024-01-14"),
		weekBlock(t, "c", "2024-01-07"),
	}

	overlaps := FindOverlappingBlocks(blocks)
	if len(overlaps) != 1 || overlaps[0] != (BlockOverlap{First: 0, Second: 2}) {
		t.Fatalf("expected only a/c to overlap, got %v", overlaps)
	}
}

func TestDeleteWeekBlock(t *testing.T) {
	blocks := []models.WeekBlock{weekBlock(t, "a", "2024-01-07"), weekBlock(t, "b", "2024-01-14")}

	remaining, removed := DeleteWeekBlock(blocks, "a")
	if !removed || len(remaining) != 1 || remaining[0].ID != "b" {
		t.Fatalf("unexpected result removed=%v remaining=%v", removed, remaining)
	}
	if len(blocks) != 2 {
		t.Fatal("expected input slice to be left untouched")
	}

	if _, removed := DeleteWeekBlock(blocks, "missing"); removed {
		t.Fatal("expected unknown id to report not removed")
	}
}

func weekBlock(t *testing.T, id string, sunday string) models.WeekBlock {
	t.Helper()
	start := mustParseDay(t, sunday)
	return models.WeekBlock{
		ID:        id,
		StartDate: start,
		EndDate:   SaturdayOfWeek(start),
		Meals:     map[int][]models.MealSlotAssignment{},
	}
}
