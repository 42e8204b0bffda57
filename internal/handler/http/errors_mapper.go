// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAuthDisabled:            http.StatusNotFound,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	validators.ErrAttachmentTooLarge: http.StatusRequestEntityTooLarge,

	store.ErrNotFound:        http.StatusNotFound,
	store.ErrAlreadyExists:   http.StatusConflict,
	store.ErrInvalidFileName: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessages is ordered: the most specific cause wins.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrEmptyTitle, app.MsgTitleRequired},
	{validators.ErrInvalidCategory, app.MsgInvalidCategory},
	{validators.ErrInvalidEmail, app.MsgInvalidEmail},
	{validators.ErrEmptyMessage, app.MsgEmptyMessage},
	{validators.ErrAttachmentTooLarge, app.MsgAttachmentTooLarge},
	{service.ErrWrongCredentials, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{store.ErrInvalidFileName, app.MsgInvalidDataProvided},
	{store.ErrNotFound, app.MsgDataNotFound},
}

// statusFromError checks the more specific targets first so that, e.g., a
// too-large attachment wrapped in ErrInvalidDataProvided yields 413.
func statusFromError(err error) int {
	if errors.Is(err, validators.ErrAttachmentTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return http.StatusText(status)
}

// writeServiceError logs err and writes the mapped status with a JSON
// message body.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	utils.WriteError(w, messageFromError(err, status), status)
}
