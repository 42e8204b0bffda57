// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listProjects", err)
		return
	}

	_, _ = utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var draft models.ProjectDraft
	if !decodeJSON(w, r, "*Handler.createProject", &draft) {
		return
	}

	project, err := h.services.ProjectService.Create(r.Context(), draft)
	if err != nil {
		writeServiceError(w, r, "*Handler.createProject", err)
		return
	}

	_, _ = utils.WriteJSON(w, project, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	var draft models.ProjectDraft
	if !decodeJSON(w, r, "*Handler.updateProject", &draft) {
		return
	}

	project, err := h.services.ProjectService.Update(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateProject", err)
		return
	}

	_, _ = utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProjectService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteProject", err)
		return
	}

	logDeleted(r, "project", chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
