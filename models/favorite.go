package models

// Favorite is a user-saved food item. The nutrition and allergen values are
// copied in at favorite time: the mirror tables are wiped on every sync, so
// a favorite must not join against them to stay displayable.
type Favorite struct {
	ID           string `json:"id"`
	LocationName string `json:"location_name"`
	MenuName     string `json:"menu_name"`
	CategoryName string `json:"category_name"`
	ItemName     string `json:"item_name"`
	DateAdded    string `json:"date_added"`

	Calories           string `json:"calories,omitempty"`
	Protein            string `json:"protein,omitempty"`
	TotalCarbohydrates string `json:"total_carbohydrates,omitempty"`
	TotalFat           string `json:"total_fat,omitempty"`
	AllergenList       string `json:"allergen_list,omitempty"`
}

// MealPlanItem is a food item the user added to today's plate. Same
// denormalization rules as Favorite.
type MealPlanItem struct {
	ID           string `json:"id"`
	LocationName string `json:"location_name"`
	MenuName     string `json:"menu_name"`
	CategoryName string `json:"category_name"`
	ItemName     string `json:"item_name"`
	DateAdded    string `json:"date_added"`

	Calories           string `json:"calories,omitempty"`
	Protein            string `json:"protein,omitempty"`
	TotalCarbohydrates string `json:"total_carbohydrates,omitempty"`
	TotalFat           string `json:"total_fat,omitempty"`
	AllergenList       string `json:"allergen_list,omitempty"`
}
