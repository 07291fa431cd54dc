package dining

import (
	"context"
	"fmt"

	"github.com/Longhorn-Developers/UT-Dining-sub000/config"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models/menu"
	"github.com/Longhorn-Developers/UT-Dining-sub000/util"
)

// DiningApiClientMock serves fixture data from resources/ instead of the
// remote table API. The id-filtered methods apply the same filters the real
// API would, so the orchestrator's chunking behaves identically against it.
type DiningApiClientMock struct {
}

// NewDiningApiClientMock creates a new instance of DiningApiClientMock
func NewDiningApiClientMock() *DiningApiClientMock {
	return &DiningApiClientMock{}
}

// SetCredentials is a no-op for the mock.
func (c *DiningApiClientMock) SetCredentials(apiKey string) {}

func int64Set(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// GetLocations loads location rows from the fixture file.
func (c *DiningApiClientMock) GetLocations(ctx context.Context) ([]models.Location, error) {
	rows, err := util.ReadLocationsFromJSON(config.GetResourcePath(config.LOCATIONS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read locations fixture")
		return nil, err
	}
	return rows, nil
}

// GetLocationTypes loads location type rows from the fixture file.
func (c *DiningApiClientMock) GetLocationTypes(ctx context.Context) ([]models.LocationType, error) {
	rows, err := util.ReadLocationTypesFromJSON(config.GetResourcePath(config.LOCATION_TYPES_RESOURCE))
	if err != nil {
		fmt.Println("Could not read location types fixture")
		return nil, err
	}
	return rows, nil
}

// GetMenus loads menu rows from the fixture file, filtered to the date.
func (c *DiningApiClientMock) GetMenus(ctx context.Context, date string) ([]menu.Menu, error) {
	rows, err := util.ReadMenusFromJSON(config.GetResourcePath(config.MENUS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read menus fixture")
		return nil, err
	}
	// Fixture menus are rewritten onto the requested date so the mock always
	// has data for "today".
	out := make([]menu.Menu, len(rows))
	for i, m := range rows {
		m.Date = date
		out[i] = m
	}
	return out, nil
}

// GetMenuCategories loads category rows filtered by menu ids.
func (c *DiningApiClientMock) GetMenuCategories(ctx context.Context, menuIDs []int64) ([]menu.MenuCategory, error) {
	rows, err := util.ReadMenuCategoriesFromJSON(config.GetResourcePath(config.MENU_CATEGORIES_RESOURCE))
	if err != nil {
		fmt.Println("Could not read menu categories fixture")
		return nil, err
	}
	wanted := int64Set(menuIDs)
	var out []menu.MenuCategory
	for _, row := range rows {
		if wanted[row.MenuID] {
			out = append(out, row)
		}
	}
	return out, nil
}

// GetFoodItems loads food item rows filtered by category ids.
func (c *DiningApiClientMock) GetFoodItems(ctx context.Context, categoryIDs []int64) ([]menu.FoodItem, error) {
	rows, err := util.ReadFoodItemsFromJSON(config.GetResourcePath(config.FOOD_ITEMS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read food items fixture")
		return nil, err
	}
	wanted := int64Set(categoryIDs)
	var out []menu.FoodItem
	for _, row := range rows {
		if wanted[row.CategoryID] {
			out = append(out, row)
		}
	}
	return out, nil
}

// GetNutrition loads nutrition rows filtered by food item ids.
func (c *DiningApiClientMock) GetNutrition(ctx context.Context, foodItemIDs []int64) ([]menu.Nutrition, error) {
	rows, err := util.ReadNutritionFromJSON(config.GetResourcePath(config.NUTRITION_RESOURCE))
	if err != nil {
		fmt.Println("Could not read nutrition fixture")
		return nil, err
	}
	wanted := int64Set(foodItemIDs)
	var out []menu.Nutrition
	for _, row := range rows {
		if wanted[row.FoodItemID] {
			out = append(out, row)
		}
	}
	return out, nil
}

// GetAllergens loads allergen rows filtered by food item ids.
func (c *DiningApiClientMock) GetAllergens(ctx context.Context, foodItemIDs []int64) ([]menu.Allergens, error) {
	rows, err := util.ReadAllergensFromJSON(config.GetResourcePath(config.ALLERGENS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read allergens fixture")
		return nil, err
	}
	wanted := int64Set(foodItemIDs)
	var out []menu.Allergens
	for _, row := range rows {
		if wanted[row.FoodItemID] {
			out = append(out, row)
		}
	}
	return out, nil
}

// GetAppInfo loads app metadata rows from the fixture file.
func (c *DiningApiClientMock) GetAppInfo(ctx context.Context) ([]models.AppInfo, error) {
	rows, err := util.ReadAppInfoFromJSON(config.GetResourcePath(config.APP_INFO_RESOURCE))
	if err != nil {
		fmt.Println("Could not read app info fixture")
		return nil, err
	}
	return rows, nil
}

// GetNotifications loads notification rows from the fixture file.
func (c *DiningApiClientMock) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	rows, err := util.ReadNotificationsFromJSON(config.GetResourcePath(config.NOTIFICATIONS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read notifications fixture")
		return nil, err
	}
	return rows, nil
}
