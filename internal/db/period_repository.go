package db

import (
	"github.com/terraincognita07/pantrycycle/internal/models"
	"gorm.io/gorm"
)

type PeriodRepository struct {
	database *gorm.DB
}

func NewPeriodRepository(database *gorm.DB) *PeriodRepository {
	return &PeriodRepository{database: database}
}

// ListByUser returns the user's periods, most recent start first.
func (repo *PeriodRepository) ListByUser(userID uint) ([]models.PeriodRecord, error) {
	records := make([]models.PeriodRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *PeriodRepository) Create(record *models.PeriodRecord) error {
	return repo.database.Create(record).Error
}

func (repo *PeriodRepository) Save(record *models.PeriodRecord) error {
	return repo.database.Save(record).Error
}
