// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/quillhub/blog-api/internal/database/postgres"
	submissionErrors "github.com/quillhub/blog-api/submissions/errors"
	"github.com/quillhub/blog-api/submissions/models"
)

// postgresSubmissionRepository implements SubmissionRepository over the
// blog_submissions table using raw SQL queries.
type postgresSubmissionRepository struct {
	client *postgres.Client
}

// NewPostgresSubmissionRepository creates a new PostgreSQL repository for
// submissions.
func NewPostgresSubmissionRepository(client *postgres.Client) SubmissionRepository {
	return &postgresSubmissionRepository{client: client}
}

const submissionColumns = `id, name, email, blog_title, category, blog_content, status, submission_time`

// Create inserts a new submission row.
func (r *postgresSubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	query := `
		INSERT INTO blog_submissions (id, name, email, blog_title, category, blog_content, status, submission_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.client.DB().ExecContext(ctx, query,
		submission.ID, submission.Name, submission.Email, submission.BlogTitle,
		submission.Category, submission.BlogContent, submission.Status, submission.SubmissionTime)
	if err != nil {
		return fmt.Errorf("%w: %v", submissionErrors.ErrDatabaseOperation, err)
	}

	return nil
}

// FindByID loads a submission.
func (r *postgresSubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM blog_submissions WHERE id = $1`

	var submission models.Submission
	err := r.client.DB().GetContext(ctx, &submission, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, submissionErrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("%w: %v", submissionErrors.ErrDatabaseOperation, err)
	}

	return &submission, nil
}

// Find returns one page of submissions matching the filter, newest first.
func (r *postgresSubmissionRepository) Find(ctx context.Context, filter *models.SubmissionQueryFilter) ([]models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM blog_submissions`
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` WHERE status = $1`
	}

	query += ` ORDER BY submission_time DESC`
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	submissions := []models.Submission{}
	if err := r.client.DB().SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %v", submissionErrors.ErrDatabaseOperation, err)
	}

	return submissions, nil
}

// Count returns the number of submissions matching the filter.
func (r *postgresSubmissionRepository) Count(ctx context.Context, filter *models.SubmissionQueryFilter) (int, error) {
	query := `SELECT COUNT(*) FROM blog_submissions`
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` WHERE status = $1`
	}

	var count int
	if err := r.client.DB().GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%w: %v", submissionErrors.ErrDatabaseOperation, err)
	}

	return count, nil
}

// UpdateStatus replaces the moderation status.
func (r *postgresSubmissionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := r.client.DB().ExecContext(ctx,
		`UPDATE blog_submissions SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("%w: %v", submissionErrors.ErrDatabaseOperation, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", submissionErrors.ErrDatabaseOperation, err)
	}
	if rowsAffected == 0 {
		return submissionErrors.ErrSubmissionNotFound
	}

	return nil
}

// Delete removes a submission row.
func (r *postgresSubmissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.client.DB().ExecContext(ctx, `DELETE FROM blog_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", submissionErrors.ErrDatabaseOperation, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", submissionErrors.ErrDatabaseOperation, err)
	}
	if rowsAffected == 0 {
		return submissionErrors.ErrSubmissionNotFound
	}

	return nil
}
