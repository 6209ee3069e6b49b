package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %s: %v", raw, err)
	}
	return parsed
}

func periodRecord(t *testing.T, id uint, start string, end string) models.PeriodRecord {
	t.Helper()
	startDay := mustParseDay(t, start)
	endDay := mustParseDay(t, end)
	return models.PeriodRecord{
		ID:        id,
		UserID:    1,
		StartDate: startDay,
		EndDate:   endDay,
		Duration:  ComputeDuration(startDay, endDay),
	}
}

func recipeIDPtr(value uint) *uint {
	return &value
}
