package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	services "github.com/Longhorn-Developers/UT-Dining-sub000/service"
)

const DATE_QUERY_ARG = "date"

type MenuHandler struct {
	menuService *services.MenuService
}

func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenuNames handles GET /v1/locations/{name}/menus?date=YYYY-MM-DD
func (h *MenuHandler) GetMenuNames(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	date := r.URL.Query().Get(DATE_QUERY_ARG)

	names, err := h.menuService.GetMenuNames(name, date)
	if err != nil {
		log.Println("Error loading menu names:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if names == nil {
		// Avoid nil slices in JSON response
		names = []string{}
	}
	writeJSON(w, names)
}

// GetMenuData handles GET /v1/locations/{name}/menus/{menu}?date=YYYY-MM-DD
func (h *MenuHandler) GetMenuData(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := r.URL.Query().Get(DATE_QUERY_ARG)

	data, err := h.menuService.GetMenuData(vars["name"], vars["menu"], date)
	if err != nil {
		log.Println("Error loading menu data:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, data)
}

// GetFoodItem handles GET /v1/locations/{name}/menus/{menu}/categories/{category}/items/{item}
func (h *MenuHandler) GetFoodItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	item, err := h.menuService.GetFoodItem(vars["name"], vars["menu"], vars["category"], vars["item"])
	if err != nil {
		log.Println("Error loading food item:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "Food item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, item)
}
