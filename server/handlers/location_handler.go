package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	services "github.com/Longhorn-Developers/UT-Dining-sub000/service"
	"github.com/Longhorn-Developers/UT-Dining-sub000/util"
)

type LocationHandler struct {
	menuService   *services.MenuService
	statusService *services.StatusService
}

func NewLocationHandler(menuService *services.MenuService, statusService *services.StatusService) *LocationHandler {
	return &LocationHandler{menuService: menuService, statusService: statusService}
}

// GetAllLocations handles GET /v1/locations
func (h *LocationHandler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.menuService.GetAllLocationsWithCoordinates()
	if err != nil {
		log.Println("Error loading location summaries:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, summaries)
}

// GetLocationDetails handles GET /v1/locations/{name}
func (h *LocationHandler) GetLocationDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	details, err := h.menuService.GetLocationDetails(name)
	if err != nil {
		log.Println("Error loading location details:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if details == nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, details)
}

// GetStatus handles GET /v1/locations/{name}/status
func (h *LocationHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	status, err := h.statusService.Status(name)
	if err != nil {
		log.Println("Error evaluating status:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if status == nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, status)
}

// GetScheduleTable handles GET /v1/locations/{name}/schedule
func (h *LocationHandler) GetScheduleTable(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	table, err := h.statusService.ScheduleTable(name)
	if err != nil {
		log.Println("Error building schedule table:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if table == nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, table)
}

// PlotSchedule handles GET /v1/locations/{name}/schedule/plot
func (h *LocationHandler) PlotSchedule(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	ws, err := h.statusService.WeeklySchedule(name)
	if err != nil {
		log.Println("Error resolving schedule:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if ws == nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotWeeklyHours(w, name, ws); err != nil {
		log.Println("Error rendering schedule plot:", err)
	}
}

// Ping handles GET /ping
func (h *LocationHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
