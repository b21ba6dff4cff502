package comments

import (
	"github.com/gofiber/fiber/v2"

	constraints "github.com/quillhub/blog-api/internal/middleware/constraints"

	"github.com/quillhub/blog-api/comments/handlers"
)

// CommentsHandlers holds all the handlers this router needs.
type CommentsHandlers struct {
	CommentHandler *handlers.CommentHandler
}

// RegisterRoutes mounts the comment sub-resource routes on the blog group.
// The routes are parameterized on the post id, so the caller must register
// them after any static blog routes.
func RegisterRoutes(group fiber.Router, h *CommentsHandlers) {
	group.Get("/:id/comments", constraints.RequireUUID("id"), h.CommentHandler.GetComments)
	group.Post("/:id/comment", constraints.RequireUUID("id"), h.CommentHandler.AddComment)
	group.Delete("/:blogId/comment/:commentId", constraints.RequireUUID("blogId"), h.CommentHandler.DeleteComment)
}
