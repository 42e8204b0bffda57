// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
)

// decodeJSON reads the request body into dst. On failure it has already
// written a 400 response.
func decodeJSON(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Warn().Err(fmt.Errorf("%w: %w", ErrInvalidJSON, err)).Str("func", funcName).Send()
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}
