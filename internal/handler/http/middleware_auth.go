package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces session token authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// with the configured sign key and issuer and stores the session id (the
// token subject) in the request context under [utils.SessionIDCtxKey].
// Requests without a valid token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				utils.WriteError(w, ErrTokenIsExpired.Error(), http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionIDCtxKey, token.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
