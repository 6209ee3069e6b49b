package models

type Recipe struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"not null" json:"title"`
	Phase       string   `gorm:"column:phase;not null;index" json:"phase"`
	Breakfast   bool     `gorm:"not null;default:false" json:"breakfast"`
	Lunch       bool     `gorm:"not null;default:false" json:"lunch"`
	Dinner      bool     `gorm:"not null;default:false" json:"dinner"`
	Tags        []string `gorm:"serializer:lenientjson" json:"tags"`
	Allergens   []string `gorm:"serializer:lenientjson" json:"allergens"`
	PrepMinutes int      `gorm:"not null;default:0" json:"prep_minutes"`
	CookMinutes int      `gorm:"not null;default:0" json:"cook_minutes"`
}

// ServesMeal reports whether the recipe is tagged for the given meal type.
func (recipe Recipe) ServesMeal(meal MealType) bool {
	switch meal {
	case MealBreakfast:
		return recipe.Breakfast
	case MealLunch:
		return recipe.Lunch
	case MealDinner:
		return recipe.Dinner
	default:
		return false
	}
}

// RecipeQuery filters the catalog. Every dietary preference must be present
// in a recipe's tags and none of the allergens may appear in it.
type RecipeQuery struct {
	Phase              string
	Meal               MealType
	DietaryPreferences []string
	Allergens          []string
	Limit              int
}
