package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-places/internal/app"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

// staticImages serves uploaded images from the uploads directory.
// Directory listings are not exposed.
func (h *Handler) staticImages() http.Handler {
	files := http.StripPrefix("/uploads/images/", http.FileServer(http.Dir(h.uploadsDir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			h.routeNotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Message: app.MsgRouteNotFound}, http.StatusNotFound)
}
