package services

import (
	"context"
	"sort"

	uuid "github.com/gofrs/uuid"

	submissionErrors "github.com/quillhub/blog-api/submissions/errors"
	"github.com/quillhub/blog-api/submissions/models"
)

// MockSubmissionRepository is an in-memory SubmissionRepository for tests.
type MockSubmissionRepository struct {
	Submissions map[uuid.UUID]*models.Submission

	// CreateErr, when set, is returned by Create.
	CreateErr error
}

// NewMockSubmissionRepository creates an empty in-memory repository.
func NewMockSubmissionRepository() *MockSubmissionRepository {
	return &MockSubmissionRepository{Submissions: make(map[uuid.UUID]*models.Submission)}
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	stored := *submission
	m.Submissions[submission.ID] = &stored
	return nil
}

func (m *MockSubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	submission, ok := m.Submissions[id]
	if !ok {
		return nil, submissionErrors.ErrSubmissionNotFound
	}
	out := *submission
	return &out, nil
}

func (m *MockSubmissionRepository) matching(filter *models.SubmissionQueryFilter) []models.Submission {
	var out []models.Submission
	for _, s := range m.Submissions {
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmissionTime.After(out[j].SubmissionTime)
	})
	return out
}

func (m *MockSubmissionRepository) Find(ctx context.Context, filter *models.SubmissionQueryFilter) ([]models.Submission, error) {
	all := m.matching(filter)
	start := (filter.Page - 1) * filter.Limit
	if start >= len(all) {
		return []models.Submission{}, nil
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (m *MockSubmissionRepository) Count(ctx context.Context, filter *models.SubmissionQueryFilter) (int, error) {
	return len(m.matching(filter)), nil
}

func (m *MockSubmissionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	submission, ok := m.Submissions[id]
	if !ok {
		return submissionErrors.ErrSubmissionNotFound
	}
	submission.Status = status
	return nil
}

func (m *MockSubmissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.Submissions[id]; !ok {
		return submissionErrors.ErrSubmissionNotFound
	}
	delete(m.Submissions, id)
	return nil
}
