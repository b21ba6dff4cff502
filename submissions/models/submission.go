// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// Moderation statuses a submission moves through.
const (
	StatusReceived  = "Received"
	StatusAccepted  = "Accepted"
	StatusPublished = "Published"
)

// IsValidStatus reports whether s is one of the moderation statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusReceived, StatusAccepted, StatusPublished:
		return true
	}
	return false
}

// Submission is a community blog submission row.
type Submission struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	BlogTitle      string    `db:"blog_title" json:"blogTitle"`
	Category       string    `db:"category" json:"category"`
	BlogContent    string    `db:"blog_content" json:"blogContent"`
	Status         string    `db:"status" json:"status"`
	SubmissionTime time.Time `db:"submission_time" json:"submissionTime"`
}

// CreateSubmissionRequest is the intake payload. BlogContent must be a link
// to a Google Docs or Drive document rather than inline post text.
type CreateSubmissionRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	BlogTitle   string `json:"blog_title" validate:"required,min=3,max=200"`
	Category    string `json:"category" validate:"required,min=2,max=50"`
	BlogContent string `json:"blog_content" validate:"required,min=10,max=2000,googledoc"`
}

// UpdateStatusRequest is the payload for moving a submission through
// moderation.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SubmissionQueryFilter carries the list endpoint's parameters. An invalid
// status value is ignored rather than rejected.
type SubmissionQueryFilter struct {
	Status string
	Page   int
	Limit  int
}

// Normalize applies defaults, clamps paging values, and drops a status
// filter that is not one of the moderation statuses.
func (f *SubmissionQueryFilter) Normalize() {
	if !IsValidStatus(f.Status) {
		f.Status = ""
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

// SubmissionPagination is the paging metadata for list responses.
type SubmissionPagination struct {
	CurrentPage      int  `json:"currentPage"`
	TotalPages       int  `json:"totalPages"`
	TotalSubmissions int  `json:"totalSubmissions"`
	Limit            int  `json:"limit"`
	HasNextPage      bool `json:"hasNextPage"`
	HasPrevPage      bool `json:"hasPrevPage"`
}

// NewSubmissionPagination computes paging metadata for total matching rows.
func NewSubmissionPagination(page, limit, total int) SubmissionPagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return SubmissionPagination{
		CurrentPage:      page,
		TotalPages:       totalPages,
		TotalSubmissions: total,
		Limit:            limit,
		HasNextPage:      page < totalPages,
		HasPrevPage:      page > 1,
	}
}

// SubmissionsListResponse is the response for the list endpoint.
type SubmissionsListResponse struct {
	Submissions []Submission         `json:"submissions"`
	Pagination  SubmissionPagination `json:"pagination"`
}

// CreateSubmissionResponse is returned by the create endpoint.
type CreateSubmissionResponse struct {
	SubmissionID uuid.UUID `json:"submissionId"`
}
