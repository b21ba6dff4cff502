package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Submission specific errors
var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidStatus      = errors.New("invalid submission status")
	ErrDatabaseOperation  = errors.New("database operation failed")
)

// Error codes
const (
	CodeSubmissionNotFound = "SUBMISSION_NOT_FOUND"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeDatabaseOperation  = "DATABASE_OPERATION_FAILED"
	CodeInternalError      = "INTERNAL_ERROR"
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
	case errors.Is(err, ErrSubmissionNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeSubmissionNotFound,
			Message: "Submission not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidStatus):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidStatus,
			Message: "Status must be Received, Accepted or Published",
			Details: err.Error(),
		})
	case errors.Is(err, ErrValidationFailed):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Validation failed",
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

// HandleValidationDetails returns 400 Bad Request with field-level details.
func HandleValidationDetails(c *fiber.Ctx, details interface{}) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationFailed,
		Message: "Validation failed",
		Details: details,
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
