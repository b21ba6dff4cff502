// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	uuid "github.com/gofrs/uuid"

	commentModels "github.com/quillhub/blog-api/comments/models"
	mediaModels "github.com/quillhub/blog-api/media/models"
)

// Sort orders accepted by the list endpoint.
const (
	SortLatest  = "latest"
	SortOldest  = "oldest"
	SortPopular = "popular"
)

// ExcerptLimit is the maximum excerpt length in runes for list responses.
const ExcerptLimit = 480

// StringList is the denormalized authors column. Stored as a JSON array of
// strings; tolerant on read, so legacy NULLs or malformed values come back
// as an empty list instead of an error.
type StringList []string

// Scan implements the sql.Scanner interface.
func (l *StringList) Scan(value interface{}) error {
	*l = StringList{}

	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil
	}

	if len(data) == 0 {
		return nil
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return nil
	}
	*l = out
	return nil
}

// Value implements the driver.Valuer interface. A nil list persists as the
// empty JSON array, never as NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

// Blog is a full blog post row.
type Blog struct {
	ID            uuid.UUID                       `db:"id" json:"id"`
	Title         string                          `db:"title" json:"title"`
	PublishedDate string                          `db:"published_date" json:"publishedDate"`
	Category      string                          `db:"category" json:"category"`
	Authors       StringList                      `db:"authors" json:"authors"`
	Body          string                          `db:"body" json:"body"`
	FeaturedImage mediaModels.NullImageDescriptor `db:"featured_image" json:"-"`
	Comments      commentModels.CommentList       `db:"comments" json:"comments"`
	CommentsCount int64                           `db:"comments_count" json:"commentsCount"`
	CreatedAt     time.Time                       `db:"created_at" json:"createdAt"`
}

// BlogResponse is the full post as returned by the get endpoint. The
// featured image renders as JSON null when absent.
type BlogResponse struct {
	ID            uuid.UUID                    `json:"id"`
	Title         string                       `json:"title"`
	PublishedDate string                       `json:"publishedDate"`
	Category      string                       `json:"category"`
	Authors       StringList                   `json:"authors"`
	Body          string                       `json:"body"`
	FeaturedImage *mediaModels.ImageDescriptor `json:"featuredImage"`
	Comments      commentModels.CommentList    `json:"comments"`
	CommentsCount int64                        `json:"commentsCount"`
	CreatedAt     time.Time                    `json:"createdAt"`
}

// ToResponse converts a row to the full response shape.
func (b *Blog) ToResponse() *BlogResponse {
	return &BlogResponse{
		ID:            b.ID,
		Title:         b.Title,
		PublishedDate: b.PublishedDate,
		Category:      b.Category,
		Authors:       b.Authors,
		Body:          b.Body,
		FeaturedImage: b.FeaturedImage.Ptr(),
		Comments:      b.Comments,
		CommentsCount: b.CommentsCount,
		CreatedAt:     b.CreatedAt,
	}
}

// BlogSummary is the reduced shape used in list responses. The body is cut
// down to an excerpt and the featured image to its public reference.
type BlogSummary struct {
	ID            uuid.UUID             `json:"id"`
	Title         string                `json:"title"`
	PublishedDate string                `json:"publishedDate"`
	Category      string                `json:"category"`
	Authors       StringList            `json:"authors"`
	Excerpt       string                `json:"excerpt"`
	FeaturedImage *mediaModels.ImageRef `json:"featuredImage"`
	CommentsCount int64                 `json:"commentsCount"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ToSummary converts a row to the list shape.
func (b *Blog) ToSummary() BlogSummary {
	return BlogSummary{
		ID:            b.ID,
		Title:         b.Title,
		PublishedDate: b.PublishedDate,
		Category:      b.Category,
		Authors:       b.Authors,
		Excerpt:       Excerpt(b.Body, ExcerptLimit),
		FeaturedImage: b.FeaturedImage.Ptr().Ref(),
		CommentsCount: b.CommentsCount,
		CreatedAt:     b.CreatedAt,
	}
}

// Excerpt truncates s to at most limit runes, appending an ellipsis when the
// body was cut. Truncation counts runes, so multi-byte text never splits
// mid-character.
func Excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// BlogQueryFilter carries the list endpoint's query parameters. Decoded from
// the query string with gorilla/schema.
type BlogQueryFilter struct {
	Category string `schema:"category"`
	Search   string `schema:"search"`
	SortBy   string `schema:"sortBy"`
	Page     int    `schema:"page"`
	Limit    int    `schema:"limit"`
}

// Normalize applies defaults and clamps paging values.
func (f *BlogQueryFilter) Normalize() {
	switch f.SortBy {
	case SortLatest, SortOldest, SortPopular:
	default:
		f.SortBy = SortLatest
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

// BlogPagination is the paging metadata for list responses.
type BlogPagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalBlogs  int  `json:"totalBlogs"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewBlogPagination computes paging metadata for total matching rows.
func NewBlogPagination(page, limit, total int) BlogPagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return BlogPagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalBlogs:  total,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// AppliedFilters echoes the effective filter values back to the client.
type AppliedFilters struct {
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
	SortBy   string `json:"sortBy"`
}

// BlogsListResponse is the response for the list endpoint.
type BlogsListResponse struct {
	Blogs      []BlogSummary  `json:"blogs"`
	Pagination BlogPagination `json:"pagination"`
	Filters    AppliedFilters `json:"filters"`
}

// CreateBlogRequest is the payload for creating a post. Authors may arrive
// as a JSON array string or as repeated form fields; the handler normalizes
// both into the slice.
type CreateBlogRequest struct {
	Title         string   `json:"title" form:"title"`
	PublishedDate string   `json:"publishedDate" form:"publishedDate"`
	Category      string   `json:"category" form:"category"`
	Authors       []string `json:"authors" form:"authors"`
	Body          string   `json:"body" form:"body"`
}

// UpdateBlogRequest is the payload for updating a post. Nil fields are left
// untouched; present fields replace the stored value.
type UpdateBlogRequest struct {
	Title         *string   `json:"title"`
	PublishedDate *string   `json:"publishedDate"`
	Category      *string   `json:"category"`
	Authors       *[]string `json:"authors"`
	Body          *string   `json:"body"`
}

// HasChanges reports whether the update carries at least one field.
func (r *UpdateBlogRequest) HasChanges() bool {
	return r.Title != nil || r.PublishedDate != nil || r.Category != nil ||
		r.Authors != nil || r.Body != nil
}

// CreateBlogResponse is returned by the create endpoint.
type CreateBlogResponse struct {
	BlogID        uuid.UUID                    `json:"blogId"`
	FeaturedImage *mediaModels.ImageDescriptor `json:"featuredImage"`
}

// UploadImageResponse is returned by the standalone upload endpoint.
type UploadImageResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
}
