package db

import (
	"errors"

	"github.com/terraincognita07/pantrycycle/internal/models"
	"gorm.io/gorm"
)

// ErrStaleProfile is returned when a write was computed from a profile
// version that another writer has already replaced.
var ErrStaleProfile = errors.New("profile was modified concurrently")

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindOrCreateByUser(userID uint) (models.Profile, error) {
	profile := models.Profile{}
	if err := repo.database.
		Where(models.Profile{UserID: userID}).
		Attrs(models.Profile{
			LegacyTemplate:     models.LegacyWeeklyTemplate{},
			WeekBlocks:         []models.WeekBlock{},
			DietaryPreferences: []string{},
			Allergens:          []string{},
		}).
		FirstOrCreate(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return normalizeProfile(profile), nil
}

// SaveWeekBlocks replaces the whole block list when the stored version still
// equals expectedVersion, and returns the new version.
func (repo *ProfileRepository) SaveWeekBlocks(userID uint, blocks []models.WeekBlock, expectedVersion int) (int, error) {
	if blocks == nil {
		blocks = []models.WeekBlock{}
	}

	nextVersion := expectedVersion + 1
	result := repo.database.Model(&models.Profile{}).
		Where("user_id = ? AND version = ?", userID, expectedVersion).
		Select("week_blocks", "version").
		Updates(&models.Profile{WeekBlocks: blocks, Version: nextVersion})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrStaleProfile
	}
	return nextVersion, nil
}

func (repo *ProfileRepository) SaveLegacyTemplate(userID uint, template models.LegacyWeeklyTemplate) error {
	if template == nil {
		template = models.LegacyWeeklyTemplate{}
	}
	return repo.database.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Select("legacy_template").
		Updates(&models.Profile{LegacyTemplate: template}).Error
}

func (repo *ProfileRepository) UpdatePreferences(userID uint, dietaryPreferences []string, allergens []string) error {
	if dietaryPreferences == nil {
		dietaryPreferences = []string{}
	}
	if allergens == nil {
		allergens = []string{}
	}
	return repo.database.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Select("dietary_preferences", "allergens").
		Updates(&models.Profile{DietaryPreferences: dietaryPreferences, Allergens: allergens}).Error
}

// ListUserIDs returns every user that owns a profile, in id order.
func (repo *ProfileRepository) ListUserIDs() ([]uint, error) {
	userIDs := make([]uint, 0)
	if err := repo.database.Model(&models.Profile{}).Order("user_id ASC").Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}

// normalizeProfile maps JSON nulls left by older rows to empty values.
func normalizeProfile(profile models.Profile) models.Profile {
	if profile.LegacyTemplate == nil {
		profile.LegacyTemplate = models.LegacyWeeklyTemplate{}
	}
	if profile.WeekBlocks == nil {
		profile.WeekBlocks = []models.WeekBlock{}
	}
	for index := range profile.WeekBlocks {
		if profile.WeekBlocks[index].Meals == nil {
			profile.WeekBlocks[index].Meals = map[int][]models.MealSlotAssignment{}
		}
	}
	if profile.DietaryPreferences == nil {
		profile.DietaryPreferences = []string{}
	}
	if profile.Allergens == nil {
		profile.Allergens = []string{}
	}
	return profile
}
