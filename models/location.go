package models

// Location is one campus dining spot as mirrored from the remote source.
// Rows are created and replaced by the sync orchestrator; everything else
// treats them as read-only.
type Location struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ColloquialName string  `json:"colloquial_name,omitempty"`
	Address        string  `json:"address"`
	Description    string  `json:"description"`
	TypeID         int64   `json:"type_id"`
	HasMenus       bool    `json:"has_menus"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	AppleMapsLink  string  `json:"apple_maps_link,omitempty"`
	GoogleMapsLink string  `json:"google_maps_link,omitempty"`

	// ServiceHours and MealTimes are JSON blobs carried verbatim from the
	// remote rows; the schedule resolver parses them into normalized
	// weekly schedules.
	ServiceHours string `json:"regular_service_hours,omitempty"`
	MealTimes    string `json:"meal_times,omitempty"`
}

// DisplayName prefers the colloquial name when the caller asks for it.
func (l *Location) DisplayName(colloquial bool) string {
	if colloquial && l.ColloquialName != "" {
		return l.ColloquialName
	}
	return l.Name
}

// LocationType is the categorical kind of a location (Dining Hall,
// Restaurant, Convenience Store, Coffee Shop, ...).
type LocationType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LocationSummary is the minimal row for map pins.
type LocationSummary struct {
	Name           string  `json:"name"`
	ColloquialName string  `json:"colloquial_name,omitempty"`
	TypeName       string  `json:"type_name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// LocationWithType pairs a location with its resolved type name.
type LocationWithType struct {
	Location
	TypeName string `json:"type_name"`
}

// LocationStatus is the open-status answer for one location.
type LocationStatus struct {
	Name    string `json:"name"`
	Open    bool   `json:"open"`
	Message string `json:"message"`
}
