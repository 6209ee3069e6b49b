package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

var (
	ErrInvalidPeriodRange = errors.New("period end is before period start")
	ErrNoPeriods          = errors.New("no recorded periods")
)

type PeriodRepository interface {
	ListByUser(userID uint) ([]models.PeriodRecord, error)
	Create(record *models.PeriodRecord) error
	Save(record *models.PeriodRecord) error
}

type PeriodService struct {
	periods  PeriodRepository
	location *time.Location
}

func NewPeriodService(periods PeriodRepository, location *time.Location) *PeriodService {
	if location == nil {
		location = time.UTC
	}
	return &PeriodService{periods: periods, location: location}
}

// History returns the user's periods, most recent first.
func (service *PeriodService) History(userID uint) (models.PeriodHistory, error) {
	records, err := service.periods.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	for index := range records {
		records[index].StartDate = DateAtLocation(records[index].StartDate, service.location)
		records[index].EndDate = DateAtLocation(records[index].EndDate, service.location)
	}
	return SortHistory(records), nil
}

func (service *PeriodService) AddPeriod(userID uint, start time.Time, end time.Time) (models.PeriodRecord, error) {
	record, err := service.buildRecord(userID, start, end)
	if err != nil {
		return models.PeriodRecord{}, err
	}
	if err := service.periods.Create(&record); err != nil {
		return models.PeriodRecord{}, fmt.Errorf("create period: %w", err)
	}
	return record, nil
}

// UpdateLatestPeriod edits the most recent record in place. Older records are
// immutable.
func (service *PeriodService) UpdateLatestPeriod(userID uint, start time.Time, end time.Time) (models.PeriodRecord, error) {
	history, err := service.History(userID)
	if err != nil {
		return models.PeriodRecord{}, err
	}
	if len(history) == 0 {
		return models.PeriodRecord{}, ErrNoPeriods
	}

	updated, err := service.buildRecord(userID, start, end)
	if err != nil {
		return models.PeriodRecord{}, err
	}

	latest := history[0]
	latest.StartDate = updated.StartDate
	latest.EndDate = updated.EndDate
	latest.Duration = updated.Duration
	if err := service.periods.Save(&latest); err != nil {
		return models.PeriodRecord{}, fmt.Errorf("update period: %w", err)
	}
	return latest, nil
}

func (service *PeriodService) buildRecord(userID uint, start time.Time, end time.Time) (models.PeriodRecord, error) {
	startDay := DateAtLocation(start, service.location)
	endDay := DateAtLocation(end, service.location)
	if endDay.Before(startDay) {
		return models.PeriodRecord{}, ErrInvalidPeriodRange
	}
	return models.PeriodRecord{
		UserID:    userID,
		StartDate: startDay,
		EndDate:   endDay,
		Duration:  ComputeDuration(startDay, endDay),
	}, nil
}
