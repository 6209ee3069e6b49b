package api

type periodPayload struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type preferencesPayload struct {
	DietaryPreferences []string `json:"dietary_preferences" validate:"max=32,dive,required,max=64"`
	Allergens          []string `json:"allergens" validate:"max=32,dive,required,max=64"`
}

type createWeekPayload struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// mealPayload leaves the slot reserved when RecipeID is omitted or null.
type mealPayload struct {
	RecipeID *uint `json:"recipe_id" validate:"omitempty,min=1"`
}
