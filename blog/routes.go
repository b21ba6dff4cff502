package blog

import (
	"github.com/gofiber/fiber/v2"

	constraints "github.com/quillhub/blog-api/internal/middleware/constraints"

	"github.com/quillhub/blog-api/blog/handlers"
)

// BlogHandlers holds all the handlers this router needs.
type BlogHandlers struct {
	BlogHandler *handlers.BlogHandler
}

// RegisterRoutes mounts the blog routes on the group. Static routes register
// before the parameterized ones so /categories, /new and /upload-image never
// collide with /:id.
func RegisterRoutes(group fiber.Router, h *BlogHandlers) {
	group.Get("/", h.BlogHandler.ListBlogs)
	group.Get("/categories", h.BlogHandler.GetCategories)
	group.Post("/new", h.BlogHandler.CreateBlog)
	group.Post("/upload-image", h.BlogHandler.UploadImage)

	group.Get("/:id", constraints.RequireUUID("id"), h.BlogHandler.GetBlog)
	group.Put("/:id", constraints.RequireUUID("id"), h.BlogHandler.UpdateBlog)
	group.Delete("/:id", constraints.RequireUUID("id"), h.BlogHandler.DeleteBlog)
}
