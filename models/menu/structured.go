package menu

// StructuredItem is a food item joined with its nutrition and allergen
// records. Either pointer may be nil when the remote source had no row.
type StructuredItem struct {
	Name      string     `json:"name"`
	Link      string     `json:"link,omitempty"`
	Nutrition *Nutrition `json:"nutrition,omitempty"`
	Allergens *Allergens `json:"allergens,omitempty"`
}

// StructuredCategory is one category and its items, in menu order.
type StructuredCategory struct {
	Title string           `json:"title"`
	Items []StructuredItem `json:"items"`
}

// StructuredLocation is the fully nested menu view for one location, one
// menu and one date. Categories is empty (never nil in JSON) when the cache
// fell back to bare location metadata.
type StructuredLocation struct {
	LocationName   string               `json:"location_name"`
	ColloquialName string               `json:"colloquial_name,omitempty"`
	MenuName       string               `json:"menu_name"`
	Date           string               `json:"date"`
	Categories     []StructuredCategory `json:"categories"`
}
