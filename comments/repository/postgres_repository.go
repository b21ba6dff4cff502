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
	"github.com/jmoiron/sqlx"

	commentsErrors "github.com/quillhub/blog-api/comments/errors"
	"github.com/quillhub/blog-api/comments/models"
	"github.com/quillhub/blog-api/internal/database/postgres"
)

type txKey struct{}

// postgresCommentRepository implements CommentRepository over the blogs
// table using raw SQL queries.
type postgresCommentRepository struct {
	client *postgres.Client
}

// NewPostgresCommentRepository creates a new PostgreSQL repository for the
// comment ledger.
func NewPostgresCommentRepository(client *postgres.Client) CommentRepository {
	return &postgresCommentRepository{client: client}
}

// getExecutor returns the transaction from context, or the DB connection.
func (r *postgresCommentRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return r.client.DB()
}

type commentsRow struct {
	Comments models.CommentList `db:"comments"`
	Count    int64              `db:"comments_count"`
}

// GetComments loads the comments column and stored count for a post.
func (r *postgresCommentRepository) GetComments(ctx context.Context, postID uuid.UUID) (models.CommentList, int64, error) {
	return r.getComments(ctx, postID, false)
}

// GetCommentsForUpdate loads the comments column under a row lock. Two
// concurrent append/delete cycles against the same post serialize here,
// which closes the lost-update window of an unguarded read-modify-write.
func (r *postgresCommentRepository) GetCommentsForUpdate(ctx context.Context, postID uuid.UUID) (models.CommentList, int64, error) {
	return r.getComments(ctx, postID, true)
}

func (r *postgresCommentRepository) getComments(ctx context.Context, postID uuid.UUID, forUpdate bool) (models.CommentList, int64, error) {
	query := `SELECT comments, comments_count FROM blogs WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var row commentsRow
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &row, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, commentsErrors.ErrPostNotFound
		}
		return nil, 0, fmt.Errorf("%w: %v", commentsErrors.ErrDatabaseOperation, err)
	}

	return row.Comments, row.Count, nil
}

// SaveComments persists the list and recomputes comments_count in one
// statement; the count can never drift from the list it was written with.
func (r *postgresCommentRepository) SaveComments(ctx context.Context, postID uuid.UUID, comments models.CommentList) error {
	query := `UPDATE blogs SET comments = $1, comments_count = $2 WHERE id = $3`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, comments, len(comments), postID)
	if err != nil {
		return fmt.Errorf("%w: %v", commentsErrors.ErrDatabaseOperation, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", commentsErrors.ErrDatabaseOperation, err)
	}
	if rowsAffected == 0 {
		return commentsErrors.ErrPostNotFound
	}

	return nil
}

// WithTransaction executes fn within a database transaction. The transaction
// is injected into the context so repository calls inside fn share it.
func (r *postgresCommentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.client.DB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
