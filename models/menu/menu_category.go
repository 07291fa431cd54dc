package menu

// MenuCategory groups food items within one menu ("Entrees", "Sides", ...).
type MenuCategory struct {
	ID     int64  `json:"id"`
	MenuID int64  `json:"menu_id"`
	Title  string `json:"title"`
}
