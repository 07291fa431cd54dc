package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	services "github.com/Longhorn-Developers/UT-Dining-sub000/service"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// itemIdentity is the display identity of a food item, the key for
// favorite and meal-plan mutations.
type itemIdentity struct {
	LocationName string `json:"location_name"`
	MenuName     string `json:"menu_name"`
	CategoryName string `json:"category_name"`
	ItemName     string `json:"item_name"`
}

func decodeIdentity(w http.ResponseWriter, r *http.Request) (itemIdentity, bool) {
	var id itemIdentity
	if err := json.NewDecoder(r.Body).Decode(&id); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return id, false
	}
	if id.LocationName == "" || id.MenuName == "" || id.CategoryName == "" || id.ItemName == "" {
		http.Error(w, "Missing item identity field", http.StatusBadRequest)
		return id, false
	}
	return id, true
}

// ListFavorites handles GET /v1/favorites
func (h *UserHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.userService.ListFavorites()
	if err != nil {
		log.Println("Error listing favorites:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, favorites)
}

// ToggleFavorite handles POST /v1/favorites/toggle
func (h *UserHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeIdentity(w, r)
	if !ok {
		return
	}
	favorited, err := h.userService.ToggleFavorite(id.LocationName, id.MenuName, id.CategoryName, id.ItemName)
	if err != nil {
		log.Println("Error toggling favorite:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"favorited": favorited})
}

// ListMealPlan handles GET /v1/meal-plan
func (h *UserHandler) ListMealPlan(w http.ResponseWriter, r *http.Request) {
	items, err := h.userService.ListMealPlan()
	if err != nil {
		log.Println("Error listing meal plan:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

// AddMealPlanItem handles POST /v1/meal-plan
func (h *UserHandler) AddMealPlanItem(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeIdentity(w, r)
	if !ok {
		return
	}
	item, err := h.userService.AddMealPlanItem(id.LocationName, id.MenuName, id.CategoryName, id.ItemName)
	if err != nil {
		log.Println("Error adding meal plan item:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, item)
}

// RemoveMealPlanItem handles DELETE /v1/meal-plan/{id}
func (h *UserHandler) RemoveMealPlanItem(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.RemoveMealPlanItem(mux.Vars(r)["id"]); err != nil {
		log.Println("Error removing meal plan item:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// GetSettings handles GET /v1/settings
func (h *UserHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.userService.Settings()
	if err != nil {
		log.Println("Error reading settings:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, settings)
}

// SetSetting handles PUT /v1/settings
func (h *UserHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Value bool   `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.userService.SetSetting(body.Name, body.Value); err != nil {
		http.Error(w, "Unknown setting", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// GetAppInfo handles GET /v1/app-info
func (h *UserHandler) GetAppInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.userService.AppInfo()
	if err != nil {
		log.Println("Error reading app info:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if info == nil {
		http.Error(w, "App info not synced yet", http.StatusNotFound)
		return
	}
	writeJSON(w, info)
}

// GetNotifications handles GET /v1/notifications
func (h *UserHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	feed, err := h.userService.Notifications()
	if err != nil {
		log.Println("Error listing notifications:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, feed)
}

// MarkNotificationsVisited handles POST /v1/notifications/visited
func (h *UserHandler) MarkNotificationsVisited(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.MarkNotificationsVisited(); err != nil {
		log.Println("Error recording notifications visit:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}
