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

	submissionErrors "github.com/quillhub/blog-api/submissions/errors"
	"github.com/quillhub/blog-api/submissions/models"
	submissionRepository "github.com/quillhub/blog-api/submissions/repository"
	"github.com/quillhub/blog-api/submissions/validation"
)

// submissionService implements the SubmissionService interface.
type submissionService struct {
	submissionRepo submissionRepository.SubmissionRepository
	now            func() time.Time
}

// NewSubmissionService wires the submission service with its dependencies.
func NewSubmissionService(submissionRepo submissionRepository.SubmissionRepository) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		now:            time.Now,
	}
}

// CreateSubmission validates and stores a submission with status Received.
func (s *submissionService) CreateSubmission(ctx context.Context, req *models.CreateSubmissionRequest) (*models.CreateSubmissionResponse, error) {
	if fieldErrors := validation.ValidateCreateSubmissionRequest(req); fieldErrors != nil {
		return nil, fmt.Errorf("%w: %s", submissionErrors.ErrValidationFailed, fieldErrors[0].Field+" "+fieldErrors[0].Message)
	}

	submission := &models.Submission{
		ID:             uuid.Must(uuid.NewV4()),
		Name:           req.Name,
		Email:          req.Email,
		BlogTitle:      req.BlogTitle,
		Category:       req.Category,
		BlogContent:    req.BlogContent,
		Status:         models.StatusReceived,
		SubmissionTime: s.now().UTC(),
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	return &models.CreateSubmissionResponse{SubmissionID: submission.ID}, nil
}

// ListSubmissions returns one page of submissions.
func (s *submissionService) ListSubmissions(ctx context.Context, filter *models.SubmissionQueryFilter) (*models.SubmissionsListResponse, error) {
	filter.Normalize()

	total, err := s.submissionRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	submissions, err := s.submissionRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.SubmissionsListResponse{
		Submissions: submissions,
		Pagination:  models.NewSubmissionPagination(filter.Page, filter.Limit, total),
	}, nil
}

// GetSubmission loads a submission.
func (s *submissionService) GetSubmission(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	return s.submissionRepo.FindByID(ctx, id)
}

// UpdateStatus moves a submission to a new moderation status. The enum check
// happens before any storage access, so an invalid value never touches the
// stored row.
func (s *submissionService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.IsValidStatus(status) {
		return fmt.Errorf("%w: %q", submissionErrors.ErrInvalidStatus, status)
	}
	return s.submissionRepo.UpdateStatus(ctx, id, status)
}

// DeleteSubmission removes a submission.
func (s *submissionService) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	return s.submissionRepo.Delete(ctx, id)
}
