// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a *ResponseError for
// everything else, even when the body is valid JSON.
func mapHTTPError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &ResponseError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		Message:    responseMessage(resp.StatusCode(), resp.Body()),
	}
}

func responseMessage(status int, body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return http.StatusText(status)
}
