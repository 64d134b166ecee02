package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.TokenService.Verify], loads the user via
// [service.AuthService.CurrentUser] and stores the resulting
// [models.Identity] in the request context before delegating to next.
//
// A missing or malformed header, a token that fails verification and a token
// for a user that no longer exists are all rejected with the same 401 body.
// The reason is only logged. A store failure while loading the user is a 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(fmt.Errorf("%w: %w", ErrNoToken, err)).Msg("request rejected")
			h.writeError(w, r, ErrNotAuthorized)
			return
		}

		userID, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			log.Err(fmt.Errorf("%w: %w", ErrTokenInvalidOrExpired, err)).Msg("request rejected")
			h.writeError(w, r, ErrNotAuthorized)
			return
		}

		user, err := h.services.AuthService.CurrentUser(ctx, userID)
		if errors.Is(err, service.ErrUserNotFound) {
			log.Err(err).Str("user_id", userID).Msg("request rejected: token of unknown user")
			h.writeError(w, r, ErrNotAuthorized)
			return
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx = utils.WithIdentity(ctx, models.Identity{UserID: user.ID, User: user.Public()})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
