package server

import (
	"github.com/gorilla/mux"

	"github.com/Longhorn-Developers/UT-Dining-sub000/server/handlers"
)

type Router struct {
	locationHandler *handlers.LocationHandler
	menuHandler     *handlers.MenuHandler
	syncHandler     *handlers.SyncHandler
	userHandler     *handlers.UserHandler
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	locationHandler *handlers.LocationHandler,
	menuHandler *handlers.MenuHandler,
	syncHandler *handlers.SyncHandler,
	userHandler *handlers.UserHandler,
	router *mux.Router) *Router {
	return &Router{
		locationHandler: locationHandler,
		menuHandler:     menuHandler,
		syncHandler:     syncHandler,
		userHandler:     userHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/locations", r.locationHandler.GetAllLocations).Methods("GET")
	r.router.HandleFunc("/v1/locations/{name}", r.locationHandler.GetLocationDetails).Methods("GET")
	r.router.HandleFunc("/v1/locations/{name}/status", r.locationHandler.GetStatus).Methods("GET")
	r.router.HandleFunc("/v1/locations/{name}/schedule", r.locationHandler.GetScheduleTable).Methods("GET")
	r.router.HandleFunc("/v1/locations/{name}/schedule/plot", r.locationHandler.PlotSchedule).Methods("GET")

	// expects ?date={YYYY-MM-DD}, defaulting to today in campus time
	r.router.HandleFunc("/v1/locations/{name}/menus", r.menuHandler.GetMenuNames).Methods("GET")
	r.router.HandleFunc("/v1/locations/{name}/menus/{menu}", r.menuHandler.GetMenuData).Methods("GET")
	r.router.HandleFunc("/v1/locations/{name}/menus/{menu}/categories/{category}/items/{item}", r.menuHandler.GetFoodItem).Methods("GET")

	r.router.HandleFunc("/v1/sync", r.syncHandler.Refresh).Methods("POST")
	r.router.HandleFunc("/v1/sync/status", r.syncHandler.Status).Methods("GET")

	r.router.HandleFunc("/v1/favorites", r.userHandler.ListFavorites).Methods("GET")
	r.router.HandleFunc("/v1/favorites/toggle", r.userHandler.ToggleFavorite).Methods("POST")
	r.router.HandleFunc("/v1/meal-plan", r.userHandler.ListMealPlan).Methods("GET")
	r.router.HandleFunc("/v1/meal-plan", r.userHandler.AddMealPlanItem).Methods("POST")
	r.router.HandleFunc("/v1/meal-plan/{id}", r.userHandler.RemoveMealPlanItem).Methods("DELETE")
	r.router.HandleFunc("/v1/settings", r.userHandler.GetSettings).Methods("GET")
	r.router.HandleFunc("/v1/settings", r.userHandler.SetSetting).Methods("PUT")
	r.router.HandleFunc("/v1/app-info", r.userHandler.GetAppInfo).Methods("GET")
	r.router.HandleFunc("/v1/notifications", r.userHandler.GetNotifications).Methods("GET")
	r.router.HandleFunc("/v1/notifications/visited", r.userHandler.MarkNotificationsVisited).Methods("POST")

	r.router.HandleFunc("/ping", r.locationHandler.Ping).Methods("GET")
}
