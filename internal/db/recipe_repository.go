package db

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/pantrycycle/internal/models"
	"gorm.io/gorm"
)

const defaultRecommendationLimit = 5

type RecipeRepository struct {
	database *gorm.DB
}

func NewRecipeRepository(database *gorm.DB) *RecipeRepository {
	return &RecipeRepository{database: database}
}

func (repo *RecipeRepository) Create(recipe *models.Recipe) error {
	return repo.database.Create(recipe).Error
}

func (repo *RecipeRepository) FindByID(id uint) (models.Recipe, error) {
	var recipe models.Recipe
	if err := repo.database.First(&recipe, id).Error; err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// Recommend narrows the catalog by phase and meal type in SQL and applies the
// tag and allergen filters in memory. Results are ordered by id.
func (repo *RecipeRepository) Recommend(query models.RecipeQuery) ([]models.Recipe, error) {
	if !models.IsValidMealType(query.Meal) {
		return nil, fmt.Errorf("recommend recipes: unsupported meal type %q", query.Meal)
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	candidates := make([]models.Recipe, 0)
	if err := repo.database.
		Where("phase = ?", query.Phase).
		Where(map[string]any{string(query.Meal): true}).
		Order("id ASC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	matched := make([]models.Recipe, 0, limit)
	for _, recipe := range candidates {
		if !recipe.ServesMeal(query.Meal) {
			continue
		}
		if !containsAllFold(recipe.Tags, query.DietaryPreferences) {
			continue
		}
		if containsAnyFold(recipe.Allergens, query.Allergens) {
			continue
		}
		matched = append(matched, recipe)
		if len(matched) == limit {
			break
		}
	}
	return matched, nil
}

func containsAllFold(values []string, required []string) bool {
	for _, needle := range required {
		if strings.TrimSpace(needle) == "" {
			continue
		}
		if !containsFold(values, needle) {
			return false
		}
	}
	return true
}

func containsAnyFold(values []string, candidates []string) bool {
	for _, needle := range candidates {
		if containsFold(values, needle) {
			return true
		}
	}
	return false
}

func containsFold(values []string, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return false
	}
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), needle) {
			return true
		}
	}
	return false
}
