// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

// attachmentField is the multipart part carrying the resource document.
const attachmentField = "file"

func (h *Handler) listResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.services.ResourceService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listResources", err)
		return
	}

	_, _ = utils.WriteJSON(w, resources, http.StatusOK)
}

func (h *Handler) createResource(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.readResourceDraft(w, r, "*Handler.createResource")
	if !ok {
		return
	}

	resource, err := h.services.ResourceService.Create(r.Context(), draft)
	if err != nil {
		writeServiceError(w, r, "*Handler.createResource", err)
		return
	}

	_, _ = utils.WriteJSON(w, resource, http.StatusCreated)
}

func (h *Handler) updateResource(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.readResourceDraft(w, r, "*Handler.updateResource")
	if !ok {
		return
	}

	resource, err := h.services.ResourceService.Update(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateResource", err)
		return
	}

	_, _ = utils.WriteJSON(w, resource, http.StatusOK)
}

func (h *Handler) deleteResource(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ResourceService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteResource", err)
		return
	}

	logDeleted(r, "resource", chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// getFile streams a stored attachment. Range requests are supported.
func (h *Handler) getFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	att, err := h.services.ResourceService.OpenFile(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, "*Handler.getFile", err)
		return
	}
	defer att.Close()

	if contentType := mime.TypeByExtension(filepath.Ext(name)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	http.ServeContent(w, r, att.Name, att.ModTime, att)
}

// readResourceDraft accepts either a JSON body or multipart/form-data with
// the document in the "file" part. On failure it has already written the
// response.
func (h *Handler) readResourceDraft(w http.ResponseWriter, r *http.Request, funcName string) (models.ResourceDraft, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var draft models.ResourceDraft
		return draft, decodeJSON(w, r, funcName, &draft)
	}

	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxUploadSize+1<<20)
	if err := r.ParseMultipartForm(h.options.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Err(err).Str("func", funcName).Msg("upload too large")
			utils.WriteError(w, app.MsgAttachmentTooLarge, http.StatusRequestEntityTooLarge)
			return models.ResourceDraft{}, false
		}
		writeServiceError(w, r, funcName, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return models.ResourceDraft{}, false
	}

	draft := models.ResourceDraft{
		Title:       r.FormValue("title"),
		Category:    models.Category(r.FormValue("category")),
		Description: r.FormValue("description"),
	}

	file, header, err := r.FormFile(attachmentField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return draft, true
	case err != nil:
		writeServiceError(w, r, funcName, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return models.ResourceDraft{}, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeServiceError(w, r, funcName, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return models.ResourceDraft{}, false
	}

	draft.Attachment = &models.Attachment{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}
	return draft, true
}
