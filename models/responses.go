package models

import "github.com/MKhiriev/go-app-scaffold/internal/app"

// ErrorResponse is the JSON body of every non-2xx API response except the
// authentication rejection.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UnauthorizedResponse is the fixed body returned for every rejected request.
// The message never depends on the rejection reason.
type UnauthorizedResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Unauthorized is the single rejection body of the API.
var Unauthorized = UnauthorizedResponse{
	Error:   app.MsgUnauthorized,
	Message: app.MsgInvalidAPIToken,
}

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// VerifyPasswordRequest asks whether Password matches PasswordHash.
type VerifyPasswordRequest struct {
	Password     string `json:"password" validate:"required"`
	PasswordHash string `json:"password_hash" validate:"required"`
}

// VerifyPasswordResponse is the answer to a [VerifyPasswordRequest].
type VerifyPasswordResponse struct {
	Valid bool `json:"valid"`
}
