package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Longhorn-Developers/UT-Dining-sub000/config"
	services "github.com/Longhorn-Developers/UT-Dining-sub000/service"
)

type SyncHandler struct {
	syncService *services.SyncService
}

func NewSyncHandler(syncService *services.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Refresh handles POST /v1/sync. A manual refresh runs forced under a fixed
// timeout; the timeout cancels the in-flight fetch rather than abandoning
// it to finish in the background.
func (h *SyncHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), config.MANUAL_REFRESH_TIMEOUT_SECONDS*time.Second)
	defer cancel()

	if err := h.syncService.Sync(ctx, true); err != nil {
		log.Println("Manual refresh failed:", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status":  "offline",
			"message": "Couldn't refresh dining data. Showing the last saved copy.",
		}); err != nil {
			log.Println("Error encoding response:", err)
		}
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// Status handles GET /v1/sync/status
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	elapsed, ok, err := h.syncService.TimeSinceLastSync()
	if err != nil {
		log.Println("Error reading sync watermark:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if !ok {
		writeJSON(w, map[string]interface{}{"synced": false})
		return
	}
	writeJSON(w, map[string]interface{}{
		"synced":             true,
		"seconds_since_sync": int64(elapsed.Seconds()),
	})
}
