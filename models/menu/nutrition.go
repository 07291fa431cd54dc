package menu

// Nutrition is the 1:1 facts record for a food item. Values are kept as the
// display strings the remote source publishes ("250", "12g"), not parsed
// numbers.
type Nutrition struct {
	ID                 int64  `json:"id"`
	FoodItemID         int64  `json:"food_item_id"`
	ServingSize        string `json:"serving_size,omitempty"`
	Calories           string `json:"calories,omitempty"`
	Protein            string `json:"protein,omitempty"`
	TotalCarbohydrates string `json:"total_carbohydrates,omitempty"`
	TotalFat           string `json:"total_fat,omitempty"`
	Sodium             string `json:"sodium,omitempty"`
	Sugars             string `json:"sugars,omitempty"`
}
