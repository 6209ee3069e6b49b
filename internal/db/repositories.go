package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles *ProfileRepository
	Periods  *PeriodRepository
	Recipes  *RecipeRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles: NewProfileRepository(database),
		Periods:  NewPeriodRepository(database),
		Recipes:  NewRecipeRepository(database),
	}
}
