// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

// createMessage is the public contact form endpoint.
func (h *Handler) createMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if !decodeJSON(w, r, "*Handler.createMessage", &req) {
		return
	}

	message, err := h.services.MessageService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.createMessage", err)
		return
	}

	_, _ = utils.WriteJSON(w, message, http.StatusCreated)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.MessageService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listMessages", err)
		return
	}

	_, _ = utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) markMessageRead(w http.ResponseWriter, r *http.Request) {
	message, err := h.services.MessageService.MarkRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.markMessageRead", err)
		return
	}

	_, _ = utils.WriteJSON(w, message, http.StatusOK)
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.services.MessageService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteMessage", err)
		return
	}

	logDeleted(r, "message", chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
