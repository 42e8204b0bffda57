// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"

	"github.com/MKhiriev/go-portfolio/internal/logger"
)

// decodeList is lenient: a body that is not a JSON array yields an empty
// list, and elements that fail to decode are dropped.
func decodeList[T any](op string, body []byte, log *logger.Logger) []T {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		log.Warn().Str("func", "decodeList").Str("op", op).Msg("response is not a list, treating as empty")
		return []T{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		log.Warn().Err(err).Str("func", "decodeList").Str("op", op).Msg("malformed list, treating as empty")
		return []T{}
	}

	items := make([]T, 0, len(raw))
	for i, element := range raw {
		var item T
		if err := json.Unmarshal(element, &item); err != nil {
			log.Warn().Err(err).Str("func", "decodeList").Str("op", op).Int("index", i).Msg("skipping malformed entry")
			continue
		}
		items = append(items, item)
	}

	return items
}

func decodeOne[T any](op string, body []byte) (T, error) {
	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return item, &DecodeError{Op: op, Err: err}
	}
	return item, nil
}

func decodeOptional[T any](op string, body []byte) (*T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	item, err := decodeOne[T](op, trimmed)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
