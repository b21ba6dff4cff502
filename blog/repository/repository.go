package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/quillhub/blog-api/blog/models"
)

// BlogRepository is the persistence interface for blog posts.
type BlogRepository interface {
	// Create inserts a new post row.
	Create(ctx context.Context, blog *models.Blog) error

	// FindByID loads a full post row.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)

	// Find returns one page of posts matching the filter.
	Find(ctx context.Context, filter *models.BlogQueryFilter) ([]models.Blog, error)

	// Count returns the number of posts matching the filter. Find and Count
	// share the same WHERE clause so the pagination totals stay consistent
	// with the returned page.
	Count(ctx context.Context, filter *models.BlogQueryFilter) (int, error)

	// Update replaces the fields present in the request.
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateBlogRequest) error

	// Delete removes a post row.
	Delete(ctx context.Context, id uuid.UUID) error

	// Categories returns the distinct non-null categories in ascending order.
	Categories(ctx context.Context) ([]string, error)
}
