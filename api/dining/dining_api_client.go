package dining

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/Longhorn-Developers/UT-Dining-sub000/api"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models/menu"
)

// DiningApiClient embeds the common HTTPClient
type DiningApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey string
}

// NewDiningApiClient creates a new instance of DiningApiClient
func NewDiningApiClient(httpClient *api.HTTPClient) *DiningApiClient {
	return &DiningApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials sets the table API key sent with every request.
func (c *DiningApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

func (c *DiningApiClient) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"apikey": c.apiKey}
}

// idList renders an id filter the way the table API expects it:
// a comma-joined IN-list.
func idList(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// GetLocations retrieves every location row.
func (c *DiningApiClient) GetLocations(ctx context.Context) ([]models.Location, error) {
	var response []models.Location
	err := c.Request(ctx, "GET", "/location", nil, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetLocationTypes retrieves the location type lookup table.
func (c *DiningApiClient) GetLocationTypes(ctx context.Context) ([]models.LocationType, error) {
	var response []models.LocationType
	err := c.Request(ctx, "GET", "/location_type", nil, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetMenus retrieves the menu rows for one service date.
func (c *DiningApiClient) GetMenus(ctx context.Context, date string) ([]menu.Menu, error) {
	query := url.Values{"date": {date}}
	var response []menu.Menu
	err := c.Request(ctx, "GET", "/menu", query, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetMenuCategories retrieves the categories belonging to the given menus.
func (c *DiningApiClient) GetMenuCategories(ctx context.Context, menuIDs []int64) ([]menu.MenuCategory, error) {
	query := url.Values{"menu_id": {idList(menuIDs)}}
	var response []menu.MenuCategory
	err := c.Request(ctx, "GET", "/menu_category", query, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetFoodItems retrieves the food items belonging to the given categories.
func (c *DiningApiClient) GetFoodItems(ctx context.Context, categoryIDs []int64) ([]menu.FoodItem, error) {
	query := url.Values{"category_id": {idList(categoryIDs)}}
	var response []menu.FoodItem
	err := c.Request(ctx, "GET", "/food_item", query, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetNutrition retrieves the nutrition rows for the given food items.
func (c *DiningApiClient) GetNutrition(ctx context.Context, foodItemIDs []int64) ([]menu.Nutrition, error) {
	query := url.Values{"food_item_id": {idList(foodItemIDs)}}
	var response []menu.Nutrition
	err := c.Request(ctx, "GET", "/nutrition", query, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetAllergens retrieves the allergen rows for the given food items.
func (c *DiningApiClient) GetAllergens(ctx context.Context, foodItemIDs []int64) ([]menu.Allergens, error) {
	query := url.Values{"food_item_id": {idList(foodItemIDs)}}
	var response []menu.Allergens
	err := c.Request(ctx, "GET", "/allergens", query, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetAppInfo retrieves the app metadata rows.
func (c *DiningApiClient) GetAppInfo(ctx context.Context) ([]models.AppInfo, error) {
	var response []models.AppInfo
	err := c.Request(ctx, "GET", "/app_information", nil, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetNotifications retrieves the published notifications.
func (c *DiningApiClient) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	var response []models.Notification
	err := c.Request(ctx, "GET", "/notifications", nil, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}
