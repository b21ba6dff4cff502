package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/quillhub/blog-api/submissions/models"
)

// SubmissionService manages community blog submissions and their moderation
// status.
type SubmissionService interface {
	// CreateSubmission validates and stores a submission with status
	// Received.
	CreateSubmission(ctx context.Context, req *models.CreateSubmissionRequest) (*models.CreateSubmissionResponse, error)

	// ListSubmissions returns one page of submissions, optionally filtered
	// by status. An unrecognized status value is ignored.
	ListSubmissions(ctx context.Context, filter *models.SubmissionQueryFilter) (*models.SubmissionsListResponse, error)

	// GetSubmission loads a submission.
	GetSubmission(ctx context.Context, id uuid.UUID) (*models.Submission, error)

	// UpdateStatus moves a submission to a new moderation status. Values
	// outside the enum are rejected and the stored status stays untouched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// DeleteSubmission removes a submission.
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
}
