// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Profile is the single portfolio owner record. It is replaced as a whole on
// every save; there is no partial update.
type Profile struct {
	FullName     string    `json:"fullName" gorm:"column:full_name"`
	Role         string    `json:"role" gorm:"column:role"`
	About        string    `json:"about" gorm:"column:about"`
	CurrentFocus CommaList `json:"currentFocus" gorm:"column:current_focus;type:text"`
	Skills       CommaList `json:"skills" gorm:"column:skills;type:text"`
	LinkedIn     string    `json:"linkedin" gorm:"column:linkedin"`
	GitHub       string    `json:"github" gorm:"column:github"`
	Email        string    `json:"email" gorm:"column:email"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profile"
}

// IsEmpty reports whether every field of the profile is blank.
func (p Profile) IsEmpty() bool {
	return p.FullName == "" && p.Role == "" && p.About == "" &&
		len(p.CurrentFocus) == 0 && len(p.Skills) == 0 &&
		p.LinkedIn == "" && p.GitHub == "" && p.Email == ""
}

// CommaList is a list of short labels that travels as a single comma-joined
// string ("Go, Postgres, Kubernetes").
//
// Decoding also accepts a JSON array so that older payloads carrying
// ["Go", "Postgres"] keep working.
type CommaList []string

// ParseCommaList splits s on commas, trims whitespace and drops blank items.
func ParseCommaList(s string) CommaList {
	parts := strings.Split(s, ",")
	out := make(CommaList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns the comma-joined form used on the wire and in forms.
func (l CommaList) String() string {
	return strings.Join(l, ", ")
}

// MarshalJSON encodes the list as one comma-joined string.
func (l CommaList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts a string, an array of strings or null.
func (l *CommaList) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		*l = ParseCommaList(value)
		return nil
	case []any:
		out := make(CommaList, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("comma list item must be a string, got %T", item)
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("comma list must be a string or an array, got %T", v)
	}
}

// Scan implements sql.Scanner so the list can be stored in a text column.
func (l *CommaList) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*l = nil
	case string:
		*l = ParseCommaList(value)
	case []byte:
		*l = ParseCommaList(string(value))
	default:
		return fmt.Errorf("cannot scan %T into CommaList", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (l CommaList) Value() (driver.Value, error) {
	return l.String(), nil
}
