package services

import (
	"context"
	"testing"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submissionErrors "github.com/quillhub/blog-api/submissions/errors"
	"github.com/quillhub/blog-api/submissions/models"
)

func newTestSubmissionService(repo *MockSubmissionRepository) *submissionService {
	return &submissionService{
		submissionRepo: repo,
		now:            func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func validSubmissionRequest() *models.CreateSubmissionRequest {
	return &models.CreateSubmissionRequest{
		Name:        "Ann Author",
		Email:       "ann@example.com",
		BlogTitle:   "My first post",
		Category:    "Engineering",
		BlogContent: "https://docs.google.com/document/d/abc123/edit",
	}
}

func TestCreateSubmission(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Stores the submission with status Received", func(t *testing.T) {
		t.Parallel()

		repo := NewMockSubmissionRepository()
		svc := newTestSubmissionService(repo)

		resp, err := svc.CreateSubmission(ctx, validSubmissionRequest())
		require.NoError(t, err)

		stored := repo.Submissions[resp.SubmissionID]
		require.NotNil(t, stored)
		assert.Equal(t, models.StatusReceived, stored.Status)
		assert.Equal(t, "Ann Author", stored.Name)
		assert.False(t, stored.SubmissionTime.IsZero())
	})

	t.Run("Invalid payload persists nothing", func(t *testing.T) {
		t.Parallel()

		repo := NewMockSubmissionRepository()
		svc := newTestSubmissionService(repo)

		req := validSubmissionRequest()
		req.BlogContent = "just some inline text instead of a link"
		_, err := svc.CreateSubmission(ctx, req)
		assert.ErrorIs(t, err, submissionErrors.ErrValidationFailed)
		assert.Empty(t, repo.Submissions)
	})
}

func TestListSubmissions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seed := func(repo *MockSubmissionRepository, n int, status string) {
		for i := 0; i < n; i++ {
			id := uuid.Must(uuid.NewV4())
			repo.Submissions[id] = &models.Submission{
				ID:             id,
				Status:         status,
				SubmissionTime: time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
			}
		}
	}

	t.Run("Filters by a valid status", func(t *testing.T) {
		t.Parallel()

		repo := NewMockSubmissionRepository()
		seed(repo, 3, models.StatusReceived)
		seed(repo, 2, models.StatusAccepted)
		svc := newTestSubmissionService(repo)

		resp, err := svc.ListSubmissions(ctx, &models.SubmissionQueryFilter{Status: models.StatusAccepted})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Pagination.TotalSubmissions)
		for _, s := range resp.Submissions {
			assert.Equal(t, models.StatusAccepted, s.Status)
		}
	})

	t.Run("Ignores an unrecognized status", func(t *testing.T) {
		t.Parallel()

		repo := NewMockSubmissionRepository()
		seed(repo, 3, models.StatusReceived)
		svc := newTestSubmissionService(repo)

		resp, err := svc.ListSubmissions(ctx, &models.SubmissionQueryFilter{Status: "Pending"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Pagination.TotalSubmissions)
	})

	t.Run("Paginates newest first", func(t *testing.T) {
		t.Parallel()

		repo := NewMockSubmissionRepository()
		seed(repo, 12, models.StatusReceived)
		svc := newTestSubmissionService(repo)

		resp, err := svc.ListSubmissions(ctx, &models.SubmissionQueryFilter{Page: 1, Limit: 5})
		require.NoError(t, err)
		require.Len(t, resp.Submissions, 5)
		assert.True(t, resp.Pagination.HasNextPage)
		for i := 0; i < len(resp.Submissions)-1; i++ {
			assert.True(t, !resp.Submissions[i].SubmissionTime.Before(resp.Submissions[i+1].SubmissionTime))
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Accepts each moderation status", func(t *testing.T) {
		t.Parallel()

		repo := NewMockSubmissionRepository()
		id := uuid.Must(uuid.NewV4())
		repo.Submissions[id] = &models.Submission{ID: id, Status: models.StatusReceived}
		svc := newTestSubmissionService(repo)

		for _, status := range []string{models.StatusAccepted, models.StatusPublished, models.StatusReceived} {
			require.NoError(t, svc.UpdateStatus(ctx, id, status))
			assert.Equal(t, status, repo.Submissions[id].Status)
		}
	})

	t.Run("Rejects a value outside the enum and leaves the row untouched", func(t *testing.T) {
		t.Parallel()

		repo := NewMockSubmissionRepository()
		id := uuid.Must(uuid.NewV4())
		repo.Submissions[id] = &models.Submission{ID: id, Status: models.StatusReceived}
		svc := newTestSubmissionService(repo)

		err := svc.UpdateStatus(ctx, id, "Rejected")
		assert.ErrorIs(t, err, submissionErrors.ErrInvalidStatus)
		assert.Equal(t, models.StatusReceived, repo.Submissions[id].Status)
	})

	t.Run("Unknown id is not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestSubmissionService(NewMockSubmissionRepository())
		err := svc.UpdateStatus(ctx, uuid.Must(uuid.NewV4()), models.StatusAccepted)
		assert.ErrorIs(t, err, submissionErrors.ErrSubmissionNotFound)
	})
}

func TestGetAndDeleteSubmission(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Get unknown id is not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestSubmissionService(NewMockSubmissionRepository())
		_, err := svc.GetSubmission(ctx, uuid.Must(uuid.NewV4()))
		assert.ErrorIs(t, err, submissionErrors.ErrSubmissionNotFound)
	})

	t.Run("Delete removes the row", func(t *testing.T) {
		t.Parallel()

		repo := NewMockSubmissionRepository()
		id := uuid.Must(uuid.NewV4())
		repo.Submissions[id] = &models.Submission{ID: id}
		svc := newTestSubmissionService(repo)

		require.NoError(t, svc.DeleteSubmission(ctx, id))
		assert.Empty(t, repo.Submissions)

		err := svc.DeleteSubmission(ctx, id)
		assert.ErrorIs(t, err, submissionErrors.ErrSubmissionNotFound)
	})
}
