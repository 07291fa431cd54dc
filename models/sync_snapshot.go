package models

import "github.com/Longhorn-Developers/UT-Dining-sub000/models/menu"

// SyncSnapshot is one full remote fetch, held in memory until every table
// has been retrieved. The cache is only ever replaced from a complete
// snapshot, so a failed fetch never leaves it half-applied. Child slices may
// legitimately be empty when an upstream short-circuit fired (no menus
// today, no categories, ...).
type SyncSnapshot struct {
	Locations     []Location
	LocationTypes []LocationType
	Menus         []menu.Menu
	Categories    []menu.MenuCategory
	FoodItems     []menu.FoodItem
	Nutrition     []menu.Nutrition
	Allergens     []menu.Allergens
	AppInfo       []AppInfo
	Notifications []Notification
}
