// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-resty/resty/v2"
)

// attachmentField is the multipart part name carrying the document.
const attachmentField = "file"

// setPayload encodes body as JSON, or as multipart/form-data when an
// attachment is present. In the multipart case every JSON field of body
// becomes a form field.
func setPayload(req *resty.Request, body any, attachment *models.Attachment) error {
	if attachment == nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
		return nil
	}

	fields, err := formFields(body)
	if err != nil {
		return err
	}

	contentType := attachment.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(attachment.Content)
	}

	req.SetMultipartFormData(fields).
		SetMultipartField(attachmentField, attachment.Name, contentType, bytes.NewReader(attachment.Content))
	return nil
}

func formFields(body any) (map[string]string, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode form fields: %w", err)
	}

	var values map[string]any
	if err = json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("form body must be an object: %w", err)
	}

	fields := make(map[string]string, len(values))
	for k, v := range values {
		switch value := v.(type) {
		case nil:
			continue
		case string:
			fields[k] = value
		default:
			encoded, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("encode form field %s: %w", k, err)
			}
			fields[k] = string(encoded)
		}
	}

	return fields, nil
}
