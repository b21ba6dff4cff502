package services

import (
	"context"
	"sync"

	uuid "github.com/gofrs/uuid"

	commentsErrors "github.com/quillhub/blog-api/comments/errors"
	"github.com/quillhub/blog-api/comments/models"
)

// MockCommentRepository is an in-memory CommentRepository for tests. The
// mutex stands in for the row lock that the real repository takes inside
// GetCommentsForUpdate.
type MockCommentRepository struct {
	mu sync.Mutex

	Posts map[uuid.UUID]*MockPostRow

	// SaveErr, when set, is returned by SaveComments.
	SaveErr error
}

// MockPostRow mirrors the comment-bearing columns of a blogs row.
type MockPostRow struct {
	Comments models.CommentList
	Count    int64
}

// NewMockCommentRepository creates an empty in-memory repository.
func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Posts: make(map[uuid.UUID]*MockPostRow)}
}

// AddPost seeds a post row with the given comments. The stored count is set
// to the list length; tests that need divergence can override Count.
func (m *MockCommentRepository) AddPost(postID uuid.UUID, comments models.CommentList) *MockPostRow {
	row := &MockPostRow{Comments: comments, Count: int64(len(comments))}
	m.Posts[postID] = row
	return row
}

func (m *MockCommentRepository) GetComments(ctx context.Context, postID uuid.UUID) (models.CommentList, int64, error) {
	row, ok := m.Posts[postID]
	if !ok {
		return nil, 0, commentsErrors.ErrPostNotFound
	}
	out := make(models.CommentList, len(row.Comments))
	copy(out, row.Comments)
	return out, row.Count, nil
}

func (m *MockCommentRepository) GetCommentsForUpdate(ctx context.Context, postID uuid.UUID) (models.CommentList, int64, error) {
	return m.GetComments(ctx, postID)
}

func (m *MockCommentRepository) SaveComments(ctx context.Context, postID uuid.UUID, comments models.CommentList) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	row, ok := m.Posts[postID]
	if !ok {
		return commentsErrors.ErrPostNotFound
	}
	stored := make(models.CommentList, len(comments))
	copy(stored, comments)
	row.Comments = stored
	row.Count = int64(len(stored))
	return nil
}

func (m *MockCommentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
