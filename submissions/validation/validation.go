package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/quillhub/blog-api/submissions/models"
)

var googleDocPattern = regexp.MustCompile(`^https://(docs|drive)\.google\.com/.+`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for a blank tag name.
	_ = v.RegisterValidation("googledoc", func(fl validator.FieldLevel) bool {
		return googleDocPattern.MatchString(fl.Field().String())
	})
	return v
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateCreateSubmissionRequest validates the intake payload, returning
// one entry per failed field. A nil result means the payload is valid.
func ValidateCreateSubmissionRequest(req *models.CreateSubmissionRequest) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "request", Message: "invalid submission data"}}
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldError{
			Field:   fieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "BlogTitle":
		return "blog_title"
	case "Category":
		return "category"
	case "BlogContent":
		return "blog_content"
	}
	return strings.ToLower(fe.Field())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "googledoc":
		return "must be a Google Docs or Google Drive link"
	}
	return "is invalid"
}
