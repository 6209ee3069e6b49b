package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/pantrycycle/internal/models"
)

var (
	ErrInvalidMealType    = errors.New("invalid meal type")
	ErrWeekBlockNotFound  = errors.New("week block not found")
	ErrInvalidRecipeLimit = errors.New("recommendation limit must be positive")
)

const DefaultRecommendationLimit = 5

type ProfileRepository interface {
	FindOrCreateByUser(userID uint) (models.Profile, error)
	SaveWeekBlocks(userID uint, blocks []models.WeekBlock, expectedVersion int) (int, error)
	UpdatePreferences(userID uint, dietaryPreferences []string, allergens []string) error
}

type HistoryProvider interface {
	History(userID uint) (models.PeriodHistory, error)
}

type RecipeCatalog interface {
	Recommend(query models.RecipeQuery) ([]models.Recipe, error)
}

type Recommendation struct {
	Phase   string          `json:"phase"`
	Meal    models.MealType `json:"meal"`
	Recipes []models.Recipe `json:"recipes"`
}

// ScheduleService runs every week block edit as read snapshot, apply the pure
// scheduling functions, write the whole block list back. Writes carry the
// profile version they were computed from so a concurrent edit is rejected
// instead of silently overwritten.
type ScheduleService struct {
	profiles            ProfileRepository
	history             HistoryProvider
	recipes             RecipeCatalog
	clock               Clock
	horizonWeeks        int
	recommendationLimit int
}

func NewScheduleService(profiles ProfileRepository, history HistoryProvider, recipes RecipeCatalog, clock Clock) *ScheduleService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ScheduleService{
		profiles:            profiles,
		history:             history,
		recipes:             recipes,
		clock:               clock,
		horizonWeeks:        DefaultPlanningHorizonWeeks,
		recommendationLimit: DefaultRecommendationLimit,
	}
}

func (service *ScheduleService) WithPlanningHorizon(weeks int) *ScheduleService {
	if weeks > 0 {
		service.horizonWeeks = weeks
	}
	return service
}

func (service *ScheduleService) WithRecommendationLimit(limit int) *ScheduleService {
	if limit > 0 {
		service.recommendationLimit = limit
	}
	return service
}

func (service *ScheduleService) Today() time.Time {
	return dateOnly(service.clock.Now())
}

// Profile loads the user's profile, converting a legacy weekly template first
// when one is still pending.
func (service *ScheduleService) Profile(userID uint) (models.Profile, error) {
	profile, _, err := service.EnsureLegacyMigrated(userID)
	return profile, err
}

// EnsureLegacyMigrated performs the pending -> done transition of the legacy
// template migration. It reports whether a block was created by this call.
func (service *ScheduleService) EnsureLegacyMigrated(userID uint) (models.Profile, bool, error) {
	profile, err := service.profiles.FindOrCreateByUser(userID)
	if err != nil {
		return models.Profile{}, false, fmt.Errorf("load profile: %w", err)
	}
	if LegacyMigrationStateOf(profile.LegacyTemplate, profile.WeekBlocks) != LegacyMigrationPending {
		return profile, false, nil
	}

	history, err := service.history.History(userID)
	if err != nil {
		return models.Profile{}, false, err
	}
	block, ok := MigrateLegacyTemplate(profile.LegacyTemplate, history, service.Today())
	if !ok {
		return profile, false, nil
	}

	blocks := []models.WeekBlock{block}
	version, err := service.profiles.SaveWeekBlocks(userID, blocks, profile.Version)
	if err != nil {
		return models.Profile{}, false, fmt.Errorf("save migrated week block: %w", err)
	}
	profile.WeekBlocks = blocks
	profile.Version = version
	return profile, true, nil
}

func (service *ScheduleService) UpdatePreferences(userID uint, dietaryPreferences []string, allergens []string) (models.Profile, error) {
	if _, err := service.profiles.FindOrCreateByUser(userID); err != nil {
		return models.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if err := service.profiles.UpdatePreferences(userID, dietaryPreferences, allergens); err != nil {
		return models.Profile{}, fmt.Errorf("update preferences: %w", err)
	}
	return service.profiles.FindOrCreateByUser(userID)
}

// AssignMeal sets or reserves one meal slot and returns the block covering date.
func (service *ScheduleService) AssignMeal(userID uint, date time.Time, meal models.MealType, recipeID *uint) (models.WeekBlock, error) {
	if !models.IsValidMealType(meal) {
		return models.WeekBlock{}, ErrInvalidMealType
	}

	profile, err := service.Profile(userID)
	if err != nil {
		return models.WeekBlock{}, err
	}
	history, err := service.history.History(userID)
	if err != nil {
		return models.WeekBlock{}, err
	}

	blocks := AssignMealSlot(date, meal, recipeID, history, profile.WeekBlocks)
	if _, err := service.profiles.SaveWeekBlocks(userID, blocks, profile.Version); err != nil {
		return models.WeekBlock{}, fmt.Errorf("save week blocks: %w", err)
	}

	block, _, _ := FindBlockForDate(date, blocks)
	return block, nil
}

func (service *ScheduleService) RemoveMeal(userID uint, date time.Time, meal models.MealType) (models.WeekBlock, error) {
	if !models.IsValidMealType(meal) {
		return models.WeekBlock{}, ErrInvalidMealType
	}

	profile, err := service.Profile(userID)
	if err != nil {
		return models.WeekBlock{}, err
	}

	blocks, found := RemoveMealSlot(date, meal, profile.WeekBlocks)
	if !found {
		return models.WeekBlock{}, ErrWeekBlockNotFound
	}
	if _, err := service.profiles.SaveWeekBlocks(userID, blocks, profile.Version); err != nil {
		return models.WeekBlock{}, fmt.Errorf("save week blocks: %w", err)
	}

	block, _, _ := FindBlockForDate(date, blocks)
	return block, nil
}

// CreateWeek appends an empty block for the week containing date. Overlap
// with existing blocks is allowed; the ids of the blocks it overlaps are
// returned so callers can warn.
func (service *ScheduleService) CreateWeek(userID uint, date time.Time) (models.WeekBlock, []string, error) {
	profile, err := service.Profile(userID)
	if err != nil {
		return models.WeekBlock{}, nil, err
	}

	block := NewWeekBlock(date)
	blocks := append(append([]models.WeekBlock{}, profile.WeekBlocks...), block)
	if _, err := service.profiles.SaveWeekBlocks(userID, blocks, profile.Version); err != nil {
		return models.WeekBlock{}, nil, fmt.Errorf("save week blocks: %w", err)
	}

	created := len(blocks) - 1
	overlapping := make([]string, 0)
	for _, overlap := range FindOverlappingBlocks(blocks) {
		switch created {
		case overlap.Second:
			overlapping = append(overlapping, blocks[overlap.First].ID)
		case overlap.First:
			overlapping = append(overlapping, blocks[overlap.Second].ID)
		}
	}
	return block, overlapping, nil
}

func (service *ScheduleService) DeleteWeek(userID uint, id string) error {
	profile, err := service.Profile(userID)
	if err != nil {
		return err
	}

	blocks, removed := DeleteWeekBlock(profile.WeekBlocks, id)
	if !removed {
		return ErrWeekBlockNotFound
	}
	if _, err := service.profiles.SaveWeekBlocks(userID, blocks, profile.Version); err != nil {
		return fmt.Errorf("save week blocks: %w", err)
	}
	return nil
}

func (service *ScheduleService) AvailableWeeks(userID uint, horizonWeeks int) ([]time.Time, error) {
	if horizonWeeks <= 0 {
		horizonWeeks = service.horizonWeeks
	}
	profile, err := service.Profile(userID)
	if err != nil {
		return nil, err
	}
	return ListAvailableWeeks(profile.WeekBlocks, service.Today(), horizonWeeks), nil
}

func (service *ScheduleService) Overview(userID uint) (CycleOverview, error) {
	history, err := service.history.History(userID)
	if err != nil {
		return CycleOverview{}, err
	}
	return BuildCycleOverview(history, service.Today()), nil
}

// Calendar builds the month grid. Phase and meal slots are looked up
// separately for every day.
func (service *ScheduleService) Calendar(userID uint, monthStart time.Time) ([]CalendarDayState, error) {
	profile, err := service.Profile(userID)
	if err != nil {
		return nil, err
	}
	history, err := service.history.History(userID)
	if err != nil {
		return nil, err
	}
	return BuildCalendarDayStates(monthStart, history, profile.WeekBlocks, service.Today()), nil
}

func (service *ScheduleService) PhaseForDate(userID uint, date time.Time) (Phase, error) {
	history, err := service.history.History(userID)
	if err != nil {
		return PhaseNone, err
	}
	return ClassifyPhase(date, history), nil
}

// Recommend asks the catalog for recipes matching the phase of date, the meal
// type, and the user's stored preferences and allergens.
func (service *ScheduleService) Recommend(userID uint, date time.Time, meal models.MealType, limit int) (Recommendation, error) {
	if !models.IsValidMealType(meal) {
		return Recommendation{}, ErrInvalidMealType
	}
	if limit < 0 {
		return Recommendation{}, ErrInvalidRecipeLimit
	}
	if limit == 0 {
		limit = service.recommendationLimit
	}

	profile, err := service.Profile(userID)
	if err != nil {
		return Recommendation{}, err
	}
	history, err := service.history.History(userID)
	if err != nil {
		return Recommendation{}, err
	}

	phase := ClassifyForMatching(date, history).Label()
	recipes, err := service.recipes.Recommend(models.RecipeQuery{
		Phase:              phase,
		Meal:               meal,
		DietaryPreferences: profile.DietaryPreferences,
		Allergens:          profile.Allergens,
		Limit:              limit,
	})
	if err != nil {
		return Recommendation{}, fmt.Errorf("recommend recipes: %w", err)
	}
	return Recommendation{Phase: phase, Meal: meal, Recipes: recipes}, nil
}
