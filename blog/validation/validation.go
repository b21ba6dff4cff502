package validation

import (
	"errors"
	"strings"

	"github.com/quillhub/blog-api/blog/models"
)

const (
	maxTitleLength    = 200
	maxCategoryLength = 50
)

// ValidateCreateBlogRequest validates a blog create payload.
func ValidateCreateBlogRequest(req *models.CreateBlogRequest) error {
	if req == nil {
		return errors.New("request is required")
	}

	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if len([]rune(req.Title)) > maxTitleLength {
		return errors.New("title must be at most 200 characters")
	}
	if strings.TrimSpace(req.PublishedDate) == "" {
		return errors.New("published date is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return errors.New("category is required")
	}
	if len([]rune(req.Category)) > maxCategoryLength {
		return errors.New("category must be at most 50 characters")
	}
	if err := validateAuthors(req.Authors); err != nil {
		return err
	}
	if strings.TrimSpace(req.Body) == "" {
		return errors.New("body is required")
	}

	return nil
}

// ValidateUpdateBlogRequest validates a blog update payload. Only present
// fields are checked.
func ValidateUpdateBlogRequest(req *models.UpdateBlogRequest) error {
	if req == nil || !req.HasChanges() {
		return errors.New("at least one field is required")
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return errors.New("title cannot be empty")
		}
		if len([]rune(*req.Title)) > maxTitleLength {
			return errors.New("title must be at most 200 characters")
		}
	}
	if req.PublishedDate != nil && strings.TrimSpace(*req.PublishedDate) == "" {
		return errors.New("published date cannot be empty")
	}
	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			return errors.New("category cannot be empty")
		}
		if len([]rune(*req.Category)) > maxCategoryLength {
			return errors.New("category must be at most 50 characters")
		}
	}
	if req.Authors != nil {
		if err := validateAuthors(*req.Authors); err != nil {
			return err
		}
	}
	if req.Body != nil && strings.TrimSpace(*req.Body) == "" {
		return errors.New("body cannot be empty")
	}

	return nil
}

func validateAuthors(authors []string) error {
	if len(authors) == 0 {
		return errors.New("at least one author is required")
	}
	for _, a := range authors {
		if strings.TrimSpace(a) == "" {
			return errors.New("author names cannot be empty")
		}
	}
	return nil
}
