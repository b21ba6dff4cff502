package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/quillhub/blog-api/blog/models"
)

// BlogService manages blog posts and their featured images.
type BlogService interface {
	// ListBlogs returns one page of posts matching the filter, with paging
	// metadata and the effective filter values echoed back.
	ListBlogs(ctx context.Context, filter *models.BlogQueryFilter) (*models.BlogsListResponse, error)

	// GetBlog loads a full post.
	GetBlog(ctx context.Context, id uuid.UUID) (*models.BlogResponse, error)

	// CreateBlog validates and inserts a post. When imageData is non-nil the
	// image is compressed and uploaded before the insert; a media failure
	// aborts the create so no orphan row is left behind.
	CreateBlog(ctx context.Context, req *models.CreateBlogRequest, imageData []byte) (*models.CreateBlogResponse, error)

	// UpdateBlog replaces the fields present in the request.
	UpdateBlog(ctx context.Context, id uuid.UUID, req *models.UpdateBlogRequest) error

	// DeleteBlog removes the post, then deletes its featured image blob
	// best-effort.
	DeleteBlog(ctx context.Context, id uuid.UUID) error

	// Categories returns the distinct categories with a leading "All".
	Categories(ctx context.Context) ([]string, error)

	// UploadImage compresses and uploads a standalone image.
	UploadImage(ctx context.Context, data []byte) (*models.UploadImageResponse, error)
}
