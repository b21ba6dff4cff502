package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/quillhub/blog-api/submissions/models"
)

// SubmissionRepository is the persistence interface for submissions.
type SubmissionRepository interface {
	// Create inserts a new submission row.
	Create(ctx context.Context, submission *models.Submission) error

	// FindByID loads a submission.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Submission, error)

	// Find returns one page of submissions matching the filter, newest
	// first.
	Find(ctx context.Context, filter *models.SubmissionQueryFilter) ([]models.Submission, error)

	// Count returns the number of submissions matching the filter.
	Count(ctx context.Context, filter *models.SubmissionQueryFilter) (int, error)

	// UpdateStatus replaces the moderation status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// Delete removes a submission row.
	Delete(ctx context.Context, id uuid.UUID) error
}
