package http

import (
	"net/http"

	"github.com/MKhiriev/go-app-scaffold/internal/app"
	"github.com/MKhiriev/go-app-scaffold/internal/utils"
	"github.com/MKhiriev/go-app-scaffold/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok", Message: app.MsgAPIRunning}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
