package menu

// Menu belongs to exactly one location and one calendar date. Menus are
// date-versioned, not recurring: each sync day lands new rows instead of
// mutating old ones.
type Menu struct {
	ID         int64  `json:"id"`
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	Date       string `json:"date"` // YYYY-MM-DD in service time
}
