package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:   http.StatusBadRequest,
	ErrNotAuthorized: http.StatusUnauthorized,
	ErrNoIdentity:    http.StatusUnauthorized,

	service.ErrMissingFields:      http.StatusBadRequest,
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrEmailTaken:         http.StatusBadRequest,
	service.ErrUsernameTaken:      http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusBadRequest,
	service.ErrUserNotFound:       http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes the {success:false, message} envelope for err.
// Internal errors are logged and reported with an opaque message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var message any = err.Error()

	var validationErr *service.ValidationError
	switch {
	case status == http.StatusInternalServerError:
		log.Err(err).Msg("internal error")
		message = msgServerError
	case errors.As(err, &validationErr):
		message = validationErr.Messages
	case status == http.StatusUnauthorized:
		message = ErrNotAuthorized.Error()
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing response")
	}
}
