// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	uuid "github.com/gofrs/uuid"

	blogErrors "github.com/quillhub/blog-api/blog/errors"
	"github.com/quillhub/blog-api/blog/models"
	"github.com/quillhub/blog-api/internal/database/postgres"
)

// postgresBlogRepository implements BlogRepository over the blogs table
// using raw SQL queries.
type postgresBlogRepository struct {
	client *postgres.Client
}

// NewPostgresBlogRepository creates a new PostgreSQL repository for blogs.
func NewPostgresBlogRepository(client *postgres.Client) BlogRepository {
	return &postgresBlogRepository{client: client}
}

const blogColumns = `id, title, published_date, category, authors, body, featured_image, comments, comments_count, created_at`

// Create inserts a new post row.
func (r *postgresBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs (id, title, published_date, category, authors, body, featured_image, comments, comments_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.client.DB().ExecContext(ctx, query,
		blog.ID, blog.Title, blog.PublishedDate, blog.Category, blog.Authors,
		blog.Body, blog.FeaturedImage, blog.Comments, blog.CommentsCount, blog.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", blogErrors.ErrDatabaseOperation, err)
	}

	return nil
}

// FindByID loads a full post row.
func (r *postgresBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	var blog models.Blog
	err := r.client.DB().GetContext(ctx, &blog, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, blogErrors.ErrBlogNotFound
		}
		return nil, fmt.Errorf("%w: %v", blogErrors.ErrDatabaseOperation, err)
	}

	return &blog, nil
}

// buildFilterClause builds the WHERE clause shared by Find and Count. The
// conditions are conjunctive: category equality and a case-insensitive
// substring match over title and body.
func buildFilterClause(filter *models.BlogQueryFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(title ILIKE $"+n+" OR body ILIKE $"+n+")")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// orderClause maps a sort name to its ORDER BY clause. published_date is
// day-granularity text, so the descending sorts break ties on created_at to
// keep offset pagination stable for same-day posts.
func orderClause(sortBy string) string {
	switch sortBy {
	case models.SortOldest:
		return " ORDER BY published_date ASC, created_at ASC"
	case models.SortPopular:
		return " ORDER BY comments_count DESC, published_date DESC, created_at DESC"
	default:
		return " ORDER BY published_date DESC, created_at DESC"
	}
}

// Find returns one page of posts matching the filter.
func (r *postgresBlogRepository) Find(ctx context.Context, filter *models.BlogQueryFilter) ([]models.Blog, error) {
	where, args := buildFilterClause(filter)

	query := `SELECT ` + blogColumns + ` FROM blogs` + where + orderClause(filter.SortBy)

	args = append(args, filter.Limit)
	query += " LIMIT $" + strconv.Itoa(len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	query += " OFFSET $" + strconv.Itoa(len(args))

	blogs := []models.Blog{}
	if err := r.client.DB().SelectContext(ctx, &blogs, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %v", blogErrors.ErrDatabaseOperation, err)
	}

	return blogs, nil
}

// Count returns the number of posts matching the filter.
func (r *postgresBlogRepository) Count(ctx context.Context, filter *models.BlogQueryFilter) (int, error) {
	where, args := buildFilterClause(filter)

	var count int
	query := `SELECT COUNT(*) FROM blogs` + where
	if err := r.client.DB().GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%w: %v", blogErrors.ErrDatabaseOperation, err)
	}

	return count, nil
}

// Update replaces the fields present in the request. The SET clause is built
// dynamically so absent fields are never touched.
func (r *postgresBlogRepository) Update(ctx context.Context, id uuid.UUID, req *models.UpdateBlogRequest) error {
	var sets []string
	var args []interface{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.PublishedDate != nil {
		addSet("published_date", *req.PublishedDate)
	}
	if req.Category != nil {
		addSet("category", *req.Category)
	}
	if req.Authors != nil {
		addSet("authors", models.StringList(*req.Authors))
	}
	if req.Body != nil {
		addSet("body", *req.Body)
	}

	if len(sets) == 0 {
		return blogErrors.ErrValidationFailed
	}

	args = append(args, id)
	query := `UPDATE blogs SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + strconv.Itoa(len(args))

	result, err := r.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", blogErrors.ErrDatabaseOperation, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", blogErrors.ErrDatabaseOperation, err)
	}
	if rowsAffected == 0 {
		return blogErrors.ErrBlogNotFound
	}

	return nil
}

// Delete removes a post row.
func (r *postgresBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.client.DB().ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", blogErrors.ErrDatabaseOperation, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", blogErrors.ErrDatabaseOperation, err)
	}
	if rowsAffected == 0 {
		return blogErrors.ErrBlogNotFound
	}

	return nil
}

// Categories returns the distinct non-null categories in ascending order.
func (r *postgresBlogRepository) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM blogs WHERE category IS NOT NULL ORDER BY category ASC`

	categories := []string{}
	if err := r.client.DB().SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("%w: %v", blogErrors.ErrDatabaseOperation, err)
	}

	return categories, nil
}
