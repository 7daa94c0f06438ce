package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-app-scaffold/internal/app"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/service"
	"github.com/MKhiriev/go-app-scaffold/internal/utils"
	"github.com/MKhiriev/go-app-scaffold/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:   http.StatusBadRequest,
	ErrRouteNotFound: http.StatusNotFound,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUserNotFound:        http.StatusNotFound,
	service.ErrItemNotFound:        http.StatusNotFound,
	service.ErrPasswordHashing:     http.StatusInternalServerError,
	service.ErrInvalidPasswordHash: http.StatusUnprocessableEntity,

	context.DeadlineExceeded: http.StatusServiceUnavailable,
	context.Canceled:         http.StatusServiceUnavailable,
}

// publicMessages holds the exact messages callers see. Errors missing here
// expose their own text only for 4xx statuses.
var publicMessages = map[error]string{
	service.ErrUserNotFound:        app.MsgUserNotFound,
	service.ErrItemNotFound:        app.MsgItemNotFound,
	service.ErrPasswordHashing:     app.MsgFailedToHashPassword,
	service.ErrInvalidPasswordHash: app.MsgInvalidPasswordHash,
	ErrRouteNotFound:               app.MsgNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, msg := range publicMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError logs err and answers with {"error": "..."}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err, status)}, status)
}
