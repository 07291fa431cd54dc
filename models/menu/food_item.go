package menu

// FoodItem is one dish on a menu. Display identity is the
// (location, menu, category, name) path rather than the row id.
type FoodItem struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
	Link       string `json:"link,omitempty"`
}
