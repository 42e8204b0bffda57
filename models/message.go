// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a contact submission left by a site visitor.
// After creation only the Read flag ever changes.
type Message struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey"`
	Email     string    `json:"email" gorm:"column:email"`
	Message   string    `json:"message" gorm:"column:message"`
	Timestamp time.Time `json:"timestamp" gorm:"column:created_at"`
	Read      bool      `json:"read" gorm:"column:is_read"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// EntityID returns the service-assigned identifier.
func (m Message) EntityID() string {
	return m.ID
}

// ContactRequest is the body of a public contact form submission.
type ContactRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}
