package http

import (
	"net/http"

	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	version := h.services.AppInfoService.GetAppVersion(ctx)

	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		utils.WriteJSON(w, models.HealthResponse{Status: "unavailable", Version: version, DB: "unreachable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok", Version: version, DB: "ok"}, http.StatusOK)
}
