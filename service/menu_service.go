package services

import (
	"log"

	redisdao "github.com/Longhorn-Developers/UT-Dining-sub000/dao/redis"
	"github.com/Longhorn-Developers/UT-Dining-sub000/dao/sqlite"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models/menu"
	"github.com/Longhorn-Developers/UT-Dining-sub000/util"
)

// MenuService is the read-only query surface over the cached menu data.
// It never goes to the network; whatever the last sync landed is what it
// serves.
type MenuService struct {
	cache *sqlite.CacheDAO
	state *redisdao.AppStateDAO
	clock util.Clock
}

// NewMenuService constructs a MenuService with its dependencies.
func NewMenuService(cache *sqlite.CacheDAO, state *redisdao.AppStateDAO, clock util.Clock) *MenuService {
	return &MenuService{cache: cache, state: state, clock: clock}
}

// resolveDate defaults an empty date to today in service time.
func (s *MenuService) resolveDate(date string) string {
	if date == "" {
		return util.Today(s.clock)
	}
	return date
}

// GetMenuNames lists the menu names for a location on a date (today when
// date is empty). Empty result for unknown combinations.
func (s *MenuService) GetMenuNames(locationName, date string) ([]string, error) {
	return s.cache.GetMenuNames(locationName, s.resolveDate(date))
}

// GetMenuData returns the nested menu for a location/menu/date. When the
// joined query cannot serve, it degrades to a category-less location shell
// so callers can still render something; nil means the location itself is
// unknown.
func (s *MenuService) GetMenuData(locationName, menuName, date string) (*menu.StructuredLocation, error) {
	date = s.resolveDate(date)

	data, err := s.cache.GetMenuData(locationName, menuName, date)
	if err != nil {
		log.Printf("[MenuService] Menu join failed for %s/%s, falling back to location shell: %v",
			locationName, menuName, err)
	} else if data != nil {
		return data, nil
	}

	details, derr := s.cache.GetLocationDetails(locationName)
	if derr != nil {
		if err != nil {
			return nil, err
		}
		return nil, derr
	}
	if details == nil {
		return nil, nil
	}
	return &menu.StructuredLocation{
		LocationName:   details.Name,
		ColloquialName: details.ColloquialName,
		MenuName:       menuName,
		Date:           date,
		Categories:     []menu.StructuredCategory{},
	}, nil
}

// GetFoodItem returns a single item by display identity, nil if absent.
func (s *MenuService) GetFoodItem(locationName, menuName, categoryName, itemName string) (*menu.StructuredItem, error) {
	return s.cache.GetFoodItem(locationName, menuName, categoryName, itemName)
}

// GetLocationDetails returns a location with its type name, honoring the
// colloquial-names setting for the display name. Nil when unknown.
func (s *MenuService) GetLocationDetails(locationName string) (*models.LocationWithType, error) {
	details, err := s.cache.GetLocationDetails(locationName)
	if err != nil || details == nil {
		return details, err
	}
	colloquial, serr := s.state.GetBoolSetting(redisdao.SETTING_COLLOQUIAL_NAMES)
	if serr != nil {
		log.Printf("[MenuService] Could not read colloquial-names setting: %v", serr)
	}
	details.Name = details.DisplayName(colloquial)
	return details, nil
}

// GetAllLocationsWithCoordinates returns map-pin summaries for every cached
// location, honoring the colloquial-names setting.
func (s *MenuService) GetAllLocationsWithCoordinates() ([]models.LocationSummary, error) {
	summaries, err := s.cache.GetAllLocationsWithCoordinates()
	if err != nil {
		return nil, err
	}
	colloquial, serr := s.state.GetBoolSetting(redisdao.SETTING_COLLOQUIAL_NAMES)
	if serr != nil {
		log.Printf("[MenuService] Could not read colloquial-names setting: %v", serr)
	}
	if colloquial {
		for i := range summaries {
			if summaries[i].ColloquialName != "" {
				summaries[i].Name = summaries[i].ColloquialName
			}
		}
	}
	return summaries, nil
}
