package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/quillhub/blog-api/comments/models"
)

// CommentService is the comment ledger: it manages the denormalized comment
// list and its count field on a post.
type CommentService interface {
	// AppendComment validates the request, generates id and timestamp, and
	// appends the comment to the post's list. The read-modify-write runs
	// under a row lock so concurrent appends cannot drop each other.
	AppendComment(ctx context.Context, postID uuid.UUID, req *models.CreateCommentRequest) (*models.Comment, error)

	// ListComments returns one page of comments sorted newest first, with
	// paging metadata and the stored comments_count.
	ListComments(ctx context.Context, postID uuid.UUID, page, limit int) (*models.CommentsListResponse, error)

	// DeleteComment removes the comment with the given id from the post's
	// list. An id not present in the list is a not-found error.
	DeleteComment(ctx context.Context, postID uuid.UUID, commentID string) error
}
