package services

import (
	"testing"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

func TestAverageCycleLengthDefaultsWithFewerThanTwoRecords(t *testing.T) {
	if got := AverageCycleLength(nil); got != 28 {
		t.Fatalf("expected default 28 for empty history, got %d", got)
	}
	single := []models.PeriodRecord{periodRecord(t, 1, "2024-01-01", "2024-01-05")}
	if got := AverageCycleLength(single); got != 28 {
		t.Fatalf("expected default 28 for single record, got %d", got)
	}
}

func TestAverageCycleLengthUsesGapsBetweenStarts(t *testing.T) {
	tests := []struct {
		name    string
		history []models.PeriodRecord
		want    int
	}{
		{
			name: "two records 28 days apart",
			history: []models.PeriodRecord{
				periodRecord(t, 2, "2024-01-29", "2024-02-02"),
				periodRecord(t, 1, "2024-01-01", "2024-01-05"),
			},
			want: 28,
		},
		{
			name: "ascending input is re-sorted",
			history: []models.PeriodRecord{
				periodRecord(t, 1, "2024-01-01", "2024-01-05"),
				periodRecord(t, 2, "2024-01-31", "2024-02-04"),
				periodRecord(t, 3, "2024-02-27", "2024-03-02"),
			},
			want: 29,
		},
		{
			name: "half rounds up",
			history: []models.PeriodRecord{
				periodRecord(t, 3, "2024-02-26", "2024-02-28"),
				periodRecord(t, 2, "2024-01-29", "2024-01-31"),
				periodRecord(t, 1, "2024-01-02", "2024-01-04"),
			},
			want: 28,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := AverageCycleLength(testCase.history); got != testCase.want {
				t.Fatalf("expected %d, got %d", testCase.want, got)
			}
		})
	}
}

func TestAveragePeriodDuration(t *testing.T) {
	if got := AveragePeriodDuration(nil); got != 5 {
		t.Fatalf("expected default 5, got %v", got)
	}

	history := []models.PeriodRecord{
		{StartDate: mustParseDay(t, "2024-02-01"), Duration: 4},
		{StartDate: mustParseDay(t, "2024-01-01"), Duration: 5},
	}
	if got := AveragePeriodDuration(history); got != 4.5 {
		t.Fatalf("expected 4.5, got %v", got)
	}
}

func TestComputeDurationIsInclusive(t *testing.T) {
	if got := ComputeDuration(mustParseDay(t, "2024-01-01"), mustParseDay(t, "2024-01-01")); got != 1 {
		t.Fatalf("expected same-day period to last 1 day, got %d", got)
	}
	if got := ComputeDuration(mustParseDay(t, "2024-01-01"), mustParseDay(t, "2024-01-05")); got != 5 {
		t.Fatalf("expected 5 days, got %d", got)
	}
	if got := ComputeDuration(mustParseDay(t, "2024-02-27"), mustParseDay(t, "2024-03-01")); got != 4 {
		t.Fatalf("expected 4 days across leap day, got %d", got)
	}
}

func TestSortHistoryOrdersMostRecentFirstWithoutMutatingInput(t *testing.T) {
	input := []models.PeriodRecord{
		periodRecord(t, 1, "2024-01-01", "2024-01-05"),
		periodRecord(t, 3, "2024-02-26", "2024-03-01"),
		periodRecord(t, 2, "2024-01-29", "2024-02-02"),
	}

	sorted := SortHistory(input)
	expected := []uint{3, 2, 1}
	for index, record := range sorted {
		if record.ID != expected[index] {
			t.Fatalf("expected id %d at %d, got %d", expected[index], index, record.ID)
		}
	}
	if input[0].ID != 1 {
		t.Fatal("expected input order to be left untouched")
	}
}
