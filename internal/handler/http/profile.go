// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

// getProfile answers JSON null until a profile has been saved.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.getProfile", err)
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if !decodeJSON(w, r, "*Handler.saveProfile", &profile) {
		return
	}

	saved, err := h.services.ProfileService.Save(r.Context(), profile)
	if err != nil {
		writeServiceError(w, r, "*Handler.saveProfile", err)
		return
	}

	_, _ = utils.WriteJSON(w, saved, http.StatusOK)
}
