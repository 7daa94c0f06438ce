package http

import (
	"net/http"

	"github.com/MKhiriev/go-app-scaffold/internal/utils"
	"github.com/MKhiriev/go-app-scaffold/models"
)

// verifyPassword checks a plaintext password against a stored hash record.
// A record that cannot be parsed is answered with 422 rather than
// {"valid": false}.
func (h *Handler) verifyPassword(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	valid, err := h.services.PasswordService.VerifyPassword(r.Context(), req.Password, req.PasswordHash)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.VerifyPasswordResponse{Valid: valid}, http.StatusOK)
}
