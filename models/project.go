// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProjectDraft holds the editable fields of a [Project]. It is what the admin
// form produces and what create/update requests carry.
type ProjectDraft struct {
	Title    string `json:"title" gorm:"column:title"`
	Problem  string `json:"problem" gorm:"column:problem"`
	Decision string `json:"decision" gorm:"column:decision"`
	Tradeoff string `json:"tradeoff" gorm:"column:tradeoff"`
	Outcome  string `json:"outcome" gorm:"column:outcome"`
}

// Project is a case-study entry. ID is assigned by the content service as a
// time-ordered UUID, so ordering by ID preserves insertion order.
type Project struct {
	ID string `json:"id" gorm:"column:id;primaryKey"`
	ProjectDraft `gorm:"embedded"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// EntityID returns the service-assigned identifier.
func (p Project) EntityID() string {
	return p.ID
}

// Draft returns the editable part of the project.
func (p Project) Draft() ProjectDraft {
	return p.ProjectDraft
}
