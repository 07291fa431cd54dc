package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	redisdao "github.com/Longhorn-Developers/UT-Dining-sub000/dao/redis"
	"github.com/Longhorn-Developers/UT-Dining-sub000/dao/sqlite"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/util"
)

// UserService owns the user-originated state: favorites, the meal plan,
// settings and the notification visit timestamp. These are local-only
// mutations, never synced upstream.
type UserService struct {
	favorites *sqlite.FavoritesDAO
	cache     *sqlite.CacheDAO
	state     *redisdao.AppStateDAO
	clock     util.Clock
}

// NewUserService constructs a UserService with its dependencies.
func NewUserService(
	favorites *sqlite.FavoritesDAO,
	cache *sqlite.CacheDAO,
	state *redisdao.AppStateDAO,
	clock util.Clock,
) *UserService {
	return &UserService{
		favorites: favorites,
		cache:     cache,
		state:     state,
		clock:     clock,
	}
}

// ToggleFavorite flips the favorite state of an item by display identity and
// reports whether it is now favorited. Nutrition and allergen values are
// copied into the favorite row at this moment, since the source tables will
// not survive the next sync.
func (s *UserService) ToggleFavorite(locationName, menuName, categoryName, itemName string) (bool, error) {
	existing, err := s.favorites.GetFavorite(locationName, menuName, categoryName, itemName)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, s.favorites.DeleteFavorite(existing.ID)
	}

	fav := models.Favorite{
		ID:           uuid.NewString(),
		LocationName: locationName,
		MenuName:     menuName,
		CategoryName: categoryName,
		ItemName:     itemName,
		DateAdded:    util.Today(s.clock),
	}
	s.denormalize(&fav.Calories, &fav.Protein, &fav.TotalCarbohydrates,
		&fav.TotalFat, &fav.AllergenList, locationName, menuName, categoryName, itemName)
	return true, s.favorites.InsertFavorite(fav)
}

// denormalize copies the current nutrition/allergen values for an item into
// the given fields. A cache miss leaves them blank; the favorite itself is
// still recorded.
func (s *UserService) denormalize(calories, protein, carbs, fat, allergenList *string,
	locationName, menuName, categoryName, itemName string) {
	item, err := s.cache.GetFoodItem(locationName, menuName, categoryName, itemName)
	if err != nil || item == nil {
		return
	}
	if item.Nutrition != nil {
		*calories = item.Nutrition.Calories
		*protein = item.Nutrition.Protein
		*carbs = item.Nutrition.TotalCarbohydrates
		*fat = item.Nutrition.TotalFat
	}
	if item.Allergens != nil {
		*allergenList = strings.Join(item.Allergens.List(), ", ")
	}
}

// ListFavorites returns the user's favorites.
func (s *UserService) ListFavorites() ([]models.Favorite, error) {
	return s.favorites.ListFavorites()
}

// AddMealPlanItem adds an item to the meal plan with denormalized values.
func (s *UserService) AddMealPlanItem(locationName, menuName, categoryName, itemName string) (*models.MealPlanItem, error) {
	item := models.MealPlanItem{
		ID:           uuid.NewString(),
		LocationName: locationName,
		MenuName:     menuName,
		CategoryName: categoryName,
		ItemName:     itemName,
		DateAdded:    util.Today(s.clock),
	}
	s.denormalize(&item.Calories, &item.Protein, &item.TotalCarbohydrates,
		&item.TotalFat, &item.AllergenList, locationName, menuName, categoryName, itemName)
	if err := s.favorites.AddMealPlanItem(item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListMealPlan returns the meal plan entries.
func (s *UserService) ListMealPlan() ([]models.MealPlanItem, error) {
	return s.favorites.ListMealPlan()
}

// RemoveMealPlanItem removes a meal plan entry by id.
func (s *UserService) RemoveMealPlanItem(id string) error {
	return s.favorites.RemoveMealPlanItem(id)
}

// Settings returns the known settings as a name-to-value map.
func (s *UserService) Settings() (map[string]bool, error) {
	out := make(map[string]bool, 2)
	for _, name := range []string{redisdao.SETTING_DARK_MODE, redisdao.SETTING_COLLOQUIAL_NAMES} {
		value, err := s.state.GetBoolSetting(name)
		if err != nil {
			return nil, err
		}
		out[name] = value
	}
	return out, nil
}

// SetSetting persists one known setting.
func (s *UserService) SetSetting(name string, value bool) error {
	if name != redisdao.SETTING_DARK_MODE && name != redisdao.SETTING_COLLOQUIAL_NAMES {
		return fmt.Errorf("unknown setting %q", name)
	}
	return s.state.SetBoolSetting(name, value)
}

// AppInfo returns the synced app metadata, or nil before the first sync.
func (s *UserService) AppInfo() (*models.AppInfo, error) {
	return s.cache.GetAppInfo()
}

// NotificationFeed pairs the synced announcements with the user's last visit.
type NotificationFeed struct {
	Notifications []models.Notification `json:"notifications"`
	LastVisited   string                `json:"last_visited,omitempty"`
}

// Notifications returns cached announcements, newest first, together with
// when the user last opened them. LastVisited is empty when never visited.
func (s *UserService) Notifications() (*NotificationFeed, error) {
	notifications, err := s.cache.GetNotifications()
	if err != nil {
		return nil, err
	}
	feed := &NotificationFeed{Notifications: notifications}
	visited, ok, err := s.state.GetNotificationsVisited()
	if err != nil {
		return nil, err
	}
	if ok {
		feed.LastVisited = visited.Format(time.RFC3339)
	}
	return feed, nil
}

// MarkNotificationsVisited records that the user opened notifications now.
func (s *UserService) MarkNotificationsVisited() error {
	return s.state.SetNotificationsVisited(s.clock.Now())
}
