// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Category classifies a learning [Resource].
type Category string

const (
	CategoryCoding    Category = "coding"
	CategoryInterview Category = "interview"
	CategoryBackend   Category = "backend"
	CategoryCloud     Category = "cloud"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryCoding, CategoryInterview, CategoryBackend, CategoryCloud}

// Valid reports whether c is one of [Categories].
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Label returns the human-readable name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryCoding:
		return "Coding"
	case CategoryInterview:
		return "Interview Prep"
	case CategoryBackend:
		return "Backend"
	case CategoryCloud:
		return "Cloud"
	default:
		return string(c)
	}
}

// Attachment is a binary document uploaded together with a resource.
// It is never serialized as JSON; its presence switches a request to
// multipart encoding.
type Attachment struct {
	Name        string
	ContentType string
	Content     []byte
}

// ResourceDraft holds the editable fields of a [Resource].
type ResourceDraft struct {
	Title       string   `json:"title" gorm:"column:title"`
	Category    Category `json:"category" gorm:"column:category"`
	Description string   `json:"description" gorm:"column:description"`

	// Attachment, when set, replaces the stored file on create or update.
	// Metadata can be updated without touching the file by leaving it nil.
	Attachment *Attachment `json:"-" gorm:"-"`
}

// Resource is a learning resource, optionally backed by a document file.
type Resource struct {
	ID string `json:"id" gorm:"column:id;primaryKey"`
	ResourceDraft `gorm:"embedded"`
	// FileURL is a path relative to the content service base URL.
	FileURL string `json:"fileUrl,omitempty" gorm:"column:file_url"`
}

// TableName returns the name of the database table
// associated with the Resource model.
func (r Resource) TableName() string {
	return "resources"
}

// EntityID returns the service-assigned identifier.
func (r Resource) EntityID() string {
	return r.ID
}

// HasFile reports whether a document is attached to the resource.
func (r Resource) HasFile() bool {
	return r.FileURL != ""
}

// Draft returns the editable part of the resource without an attachment.
func (r Resource) Draft() ResourceDraft {
	d := r.ResourceDraft
	d.Attachment = nil
	return d
}
