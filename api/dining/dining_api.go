package dining

import (
	"context"

	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models/menu"
)

// DiningAPI is the opaque table-oriented remote source: select-with-filter
// per mirrored table. Callers chunk the id lists themselves; one call here
// is one wire request.
type DiningAPI interface {
	GetLocations(ctx context.Context) ([]models.Location, error)
	GetLocationTypes(ctx context.Context) ([]models.LocationType, error)
	GetMenus(ctx context.Context, date string) ([]menu.Menu, error)
	GetMenuCategories(ctx context.Context, menuIDs []int64) ([]menu.MenuCategory, error)
	GetFoodItems(ctx context.Context, categoryIDs []int64) ([]menu.FoodItem, error)
	GetNutrition(ctx context.Context, foodItemIDs []int64) ([]menu.Nutrition, error)
	GetAllergens(ctx context.Context, foodItemIDs []int64) ([]menu.Allergens, error)
	GetAppInfo(ctx context.Context) ([]models.AppInfo, error)
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	SetCredentials(apiKey string)
}
