// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
)

// auth guards admin routes with a bearer token. It lets every request
// through when token auth is disabled.
//
// On success the admin login from the token subject is stored in the
// request context under [utils.AdminLoginCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.AuthService.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil || tokenString == "" {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		login, _ := token.GetLogin()
		next.ServeHTTP(w, r.WithContext(utils.WithAdminLogin(ctx, login)))
	})
}

// logDeleted records who removed an entry. Requests on an open write
// surface carry no admin login.
func logDeleted(r *http.Request, entity, id string) {
	event := logger.FromRequest(r).Info().Str("entity", entity).Str("id", id)
	if login, ok := utils.GetAdminLoginFromContext(r.Context()); ok {
		event = event.Str("admin", login)
	}
	event.Msg("entry deleted")
}
