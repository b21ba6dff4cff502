// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"

	commentsErrors "github.com/quillhub/blog-api/comments/errors"
	"github.com/quillhub/blog-api/comments/models"
	commentRepository "github.com/quillhub/blog-api/comments/repository"
	"github.com/quillhub/blog-api/comments/validation"
	"github.com/quillhub/blog-api/internal/pkg/log"
)

const (
	defaultCommentLimit = 10
	maxCommentLimit     = 100
	defaultCommentPage  = 1
)

// commentService implements the CommentService interface.
type commentService struct {
	commentRepo commentRepository.CommentRepository
	now         func() time.Time
}

// NewCommentService wires the comment service with its dependencies.
func NewCommentService(commentRepo commentRepository.CommentRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		now:         time.Now,
	}
}

// AppendComment appends a new comment to the post's denormalized list.
// The load-append-save cycle runs inside a transaction with the post row
// locked, so two concurrent appends serialize instead of the second write
// silently dropping the first comment.
func (s *commentService) AppendComment(ctx context.Context, postID uuid.UUID, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := validation.ValidateCreateCommentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", commentsErrors.ErrValidationFailed, err)
	}

	commentID := uuid.Must(uuid.NewV4())
	comment := models.Comment{
		ID:        commentID.String(),
		Name:      req.Name,
		Email:     req.Email,
		Text:      req.Text,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}

	err := s.commentRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		comments, _, err := s.commentRepo.GetCommentsForUpdate(txCtx, postID)
		if err != nil {
			return err
		}
		comments = append(comments, comment)
		return s.commentRepo.SaveComments(txCtx, postID, comments)
	})
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListComments returns one page of the post's comments, newest first.
// The stored comments_count is surfaced verbatim; when tolerated corrupt
// data makes it diverge from the live list length, the divergence is the
// caller's signal, not something to reconcile here.
func (s *commentService) ListComments(ctx context.Context, postID uuid.UUID, page, limit int) (*models.CommentsListResponse, error) {
	page, limit = normalizePaging(page, limit)

	comments, storedCount, err := s.commentRepo.GetComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	if int(storedCount) != len(comments) {
		log.WarnWithContext(ctx, "stored comments_count %d diverges from live list length %d for post %s",
			storedCount, len(comments), postID)
	}

	sorted := comments.SortedNewestFirst()
	pageSlice := sorted.Page(page, limit)

	return &models.CommentsListResponse{
		Comments:   pageSlice,
		Pagination: models.NewPagination(page, limit, len(sorted)),
		Count:      storedCount,
	}, nil
}

// DeleteComment removes a comment by id. Whether anything was removed is
// detected by comparing list length before and after the filter; a missing
// id is a not-found, never a silent no-op.
func (s *commentService) DeleteComment(ctx context.Context, postID uuid.UUID, commentID string) error {
	return s.commentRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		comments, _, err := s.commentRepo.GetCommentsForUpdate(txCtx, postID)
		if err != nil {
			return err
		}

		filtered := make(models.CommentList, 0, len(comments))
		for _, c := range comments {
			if c.ID != commentID {
				filtered = append(filtered, c)
			}
		}

		if len(filtered) == len(comments) {
			return commentsErrors.ErrCommentNotFound
		}

		return s.commentRepo.SaveComments(txCtx, postID, filtered)
	})
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultCommentPage
	}
	if limit < 1 {
		limit = defaultCommentLimit
	}
	if limit > maxCommentLimit {
		limit = maxCommentLimit
	}
	return page, limit
}
