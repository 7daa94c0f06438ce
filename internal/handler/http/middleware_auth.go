package http

import (
	"net/http"

	"github.com/MKhiriev/go-app-scaffold/internal/gate"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/utils"
	"github.com/MKhiriev/go-app-scaffold/models"
)

// auth runs the authentication gate in front of next.
//
// Rejected requests get 401 with the fixed [models.Unauthorized] body; the
// reason is logged and counted but never sent to the caller. Forwarded
// requests reach next unmodified.
func (h *Handler) auth(next http.Handler) http.Handler {
	forward := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.ObserveGateDecision(gate.Forward.String(), "")
		next.ServeHTTP(w, r)
	})

	return h.gate.Middleware(h.rejectUnauthorized)(forward)
}

func (h *Handler) rejectUnauthorized(w http.ResponseWriter, r *http.Request, reason error) {
	label := gate.ReasonLabel(reason)

	logger.FromRequest(r).Warn().
		Err(reason).
		Str("reason", label).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request rejected by authentication gate")

	h.metrics.ObserveGateDecision(gate.Reject.String(), label)

	utils.WriteJSON(w, models.Unauthorized, http.StatusUnauthorized)
}
