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

	blogErrors "github.com/quillhub/blog-api/blog/errors"
	"github.com/quillhub/blog-api/blog/models"
	blogRepository "github.com/quillhub/blog-api/blog/repository"
	"github.com/quillhub/blog-api/blog/validation"
	commentModels "github.com/quillhub/blog-api/comments/models"
	"github.com/quillhub/blog-api/internal/pkg/log"
	mediaModels "github.com/quillhub/blog-api/media/models"
	mediaServices "github.com/quillhub/blog-api/media/services"
)

// blogService implements the BlogService interface.
type blogService struct {
	blogRepo     blogRepository.BlogRepository
	mediaService mediaServices.MediaService
	now          func() time.Time
}

// NewBlogService wires the blog service with its dependencies.
func NewBlogService(blogRepo blogRepository.BlogRepository, mediaService mediaServices.MediaService) BlogService {
	return &blogService{
		blogRepo:     blogRepo,
		mediaService: mediaService,
		now:          time.Now,
	}
}

// ListBlogs returns one page of posts. Count and Find run against the same
// filter so the totals always describe the returned page.
func (s *blogService) ListBlogs(ctx context.Context, filter *models.BlogQueryFilter) (*models.BlogsListResponse, error) {
	filter.Normalize()

	total, err := s.blogRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	blogs, err := s.blogRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.BlogSummary, 0, len(blogs))
	for i := range blogs {
		summaries = append(summaries, blogs[i].ToSummary())
	}

	return &models.BlogsListResponse{
		Blogs:      summaries,
		Pagination: models.NewBlogPagination(filter.Page, filter.Limit, total),
		Filters: models.AppliedFilters{
			Category: filter.Category,
			Search:   filter.Search,
			SortBy:   filter.SortBy,
		},
	}, nil
}

// GetBlog loads a full post.
func (s *blogService) GetBlog(ctx context.Context, id uuid.UUID) (*models.BlogResponse, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return blog.ToResponse(), nil
}

// CreateBlog validates and inserts a post. The image upload happens before
// the insert: a media failure aborts the whole create, and an insert failure
// after a successful upload deletes the just-uploaded blob so storage never
// accumulates orphans.
func (s *blogService) CreateBlog(ctx context.Context, req *models.CreateBlogRequest, imageData []byte) (*models.CreateBlogResponse, error) {
	if err := validation.ValidateCreateBlogRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", blogErrors.ErrValidationFailed, err)
	}

	var featured mediaModels.NullImageDescriptor
	if imageData != nil {
		descriptor, err := s.mediaService.ProcessAndUpload(ctx, imageData)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", blogErrors.ErrMediaUpload, err)
		}
		featured = mediaModels.NullImageDescriptor{ImageDescriptor: *descriptor, Valid: true}
	}

	blog := &models.Blog{
		ID:            uuid.Must(uuid.NewV4()),
		Title:         req.Title,
		PublishedDate: req.PublishedDate,
		Category:      req.Category,
		Authors:       models.StringList(req.Authors),
		Body:          req.Body,
		FeaturedImage: featured,
		Comments:      commentModels.CommentList{},
		CommentsCount: 0,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		if featured.Valid {
			if delErr := s.mediaService.Delete(ctx, featured.PublicID); delErr != nil {
				log.ErrorWithContext(ctx, "failed to clean up blob %s after insert failure: %v",
					featured.PublicID, delErr)
			}
		}
		return nil, err
	}

	return &models.CreateBlogResponse{
		BlogID:        blog.ID,
		FeaturedImage: featured.Ptr(),
	}, nil
}

// UpdateBlog replaces the fields present in the request.
func (s *blogService) UpdateBlog(ctx context.Context, id uuid.UUID, req *models.UpdateBlogRequest) error {
	if err := validation.ValidateUpdateBlogRequest(req); err != nil {
		return fmt.Errorf("%w: %v", blogErrors.ErrValidationFailed, err)
	}
	return s.blogRepo.Update(ctx, id, req)
}

// DeleteBlog removes the post row, then deletes the featured image blob.
// The blob delete is best-effort: once the row is gone the delete succeeded
// from the client's point of view, and a dangling blob only costs storage.
func (s *blogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return err
	}

	if blog.FeaturedImage.Valid {
		if err := s.mediaService.Delete(ctx, blog.FeaturedImage.PublicID); err != nil {
			log.ErrorWithContext(ctx, "failed to delete blob %s for removed blog %s: %v",
				blog.FeaturedImage.PublicID, id, err)
		}
	}

	return nil
}

// Categories returns the distinct categories prefixed with "All".
func (s *blogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.blogRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{"All"}, categories...), nil
}

// UploadImage compresses and uploads a standalone image.
func (s *blogService) UploadImage(ctx context.Context, data []byte) (*models.UploadImageResponse, error) {
	descriptor, err := s.mediaService.ProcessAndUpload(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", blogErrors.ErrMediaUpload, err)
	}

	return &models.UploadImageResponse{
		URL:      descriptor.URL,
		PublicID: descriptor.PublicID,
		Width:    descriptor.Width,
		Height:   descriptor.Height,
		Format:   descriptor.Format,
	}, nil
}
