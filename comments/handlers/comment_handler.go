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

	"github.com/quillhub/blog-api/comments/errors"
	"github.com/quillhub/blog-api/comments/models"
	"github.com/quillhub/blog-api/comments/services"
)

// CommentHandler handles comment HTTP requests for a post.
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler creates a new CommentHandler with injected dependencies.
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddComment handles POST /:id/comment.
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	}

	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	comment, err := h.commentService.AppendComment(c.Context(), postID, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// GetComments handles GET /:id/comments with page and limit query params.
func (h *CommentHandler) GetComments(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	response, err := h.commentService.ListComments(c.Context(), postID, page, limit)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(response)
}

// DeleteComment handles DELETE /:blogId/comment/:commentId.
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("blogId"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	}

	commentID := c.Params("commentId")
	if commentID == "" {
		return errors.HandleInvalidRequestError(c, "Comment id is required")
	}

	if err := h.commentService.DeleteComment(c.Context(), postID, commentID); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}
