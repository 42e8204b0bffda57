// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// getServerVersion answers the version as plain text. Build date and commit,
// when known, travel in response headers.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	build := h.services.AppInfoService.GetBuildInfo(ctx)
	if build.BuildDate() != "" {
		w.Header().Set("X-Build-Date", build.BuildDate())
	}
	if build.BuildCommit() != "" {
		w.Header().Set("X-Build-Commit", build.BuildCommit())
	}

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}
