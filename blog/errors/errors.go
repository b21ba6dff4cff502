package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Blog specific errors
var (
	ErrBlogNotFound      = errors.New("blog not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrMediaUpload       = errors.New("media upload failed")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeBlogNotFound      = "BLOG_NOT_FOUND"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeMediaUpload       = "MEDIA_UPLOAD_FAILED"
	CodeDatabaseOperation = "DATABASE_OPERATION_FAILED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized error response format.
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps service errors to HTTP responses.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrBlogNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeBlogNotFound,
			Message: "Blog not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrValidationFailed):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, ErrMediaUpload):
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeMediaUpload,
			Message: "Image processing failed",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeDatabaseOperation,
			Message: "Database operation failed",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleValidationError returns 400 Bad Request with a validation message.
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationFailed,
		Message: message,
		Details: message,
	})
}

// HandleInvalidRequestError returns 400 Bad Request for malformed requests.
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
		Details: message,
	})
}
