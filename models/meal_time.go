package models

// MealTime is one named service window within a day ("Breakfast",
// 700-1030). Carried inside the meal_times blob on a location row.
type MealTime struct {
	Name  string `json:"name"`
	Open  int    `json:"open"`
	Close int    `json:"close"`
}
