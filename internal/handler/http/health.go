package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/user-management-api/internal/utils"
)

// health handles GET /health. It reports liveness only; no downstream
// dependency is probed.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	}, http.StatusOK)
}
