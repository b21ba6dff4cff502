// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/quillhub/blog-api/submissions/errors"
	"github.com/quillhub/blog-api/submissions/models"
	"github.com/quillhub/blog-api/submissions/services"
	"github.com/quillhub/blog-api/submissions/validation"
)

// SubmissionHandler handles submission HTTP requests.
type SubmissionHandler struct {
	submissionService services.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler with injected
// dependencies.
func NewSubmissionHandler(submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// CreateSubmission handles POST /submission. Validation failures come back
// with one detail entry per failed field.
func (h *SubmissionHandler) CreateSubmission(c *fiber.Ctx) error {
	var req models.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if fieldErrors := validation.ValidateCreateSubmissionRequest(&req); fieldErrors != nil {
		return errors.HandleValidationDetails(c, fieldErrors)
	}

	result, err := h.submissionService.CreateSubmission(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(result)
}

// ListSubmissions handles GET /submission with status, page and limit query
// parameters.
func (h *SubmissionHandler) ListSubmissions(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	filter := &models.SubmissionQueryFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	response, err := h.submissionService.ListSubmissions(c.Context(), filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(response)
}

// GetSubmission handles GET /submission/:id.
func (h *SubmissionHandler) GetSubmission(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	}

	submission, err := h.submissionService.GetSubmission(c.Context(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(submission)
}

// UpdateStatus handles PATCH /submission/:id/status.
func (h *SubmissionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	}

	var req models.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := h.submissionService.UpdateStatus(c.Context(), id, req.Status); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Submission status updated successfully"})
}

// DeleteSubmission handles DELETE /submission/:id.
func (h *SubmissionHandler) DeleteSubmission(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	}

	if err := h.submissionService.DeleteSubmission(c.Context(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Submission deleted successfully"})
}
