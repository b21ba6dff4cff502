package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/quillhub/blog-api/comments/models"
)

// CommentRepository is the store adapter for the comment ledger. Comments
// live in a JSONB column of the blogs table, so every operation addresses a
// single post row.
type CommentRepository interface {
	// GetComments loads the comments column and the stored comments_count.
	// Returns comments/errors.ErrPostNotFound when the post is unmatched.
	GetComments(ctx context.Context, postID uuid.UUID) (models.CommentList, int64, error)

	// GetCommentsForUpdate is GetComments with a row lock; it must run
	// inside a transaction started by WithTransaction so concurrent
	// read-modify-write cycles serialize per post.
	GetCommentsForUpdate(ctx context.Context, postID uuid.UUID) (models.CommentList, int64, error)

	// SaveComments persists the list and sets comments_count to its length
	// in the same statement, keeping the two in sync by construction.
	SaveComments(ctx context.Context, postID uuid.UUID, comments models.CommentList) error

	// WithTransaction executes fn within a database transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
