// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/gorilla/schema"

	"github.com/quillhub/blog-api/blog/errors"
	"github.com/quillhub/blog-api/blog/models"
	"github.com/quillhub/blog-api/blog/services"
	"github.com/quillhub/blog-api/internal/platform/config"
)

// BlogHandler handles all blog HTTP requests.
type BlogHandler struct {
	blogService services.BlogService
	mediaConfig config.MediaConfig
	decoder     *schema.Decoder
}

// NewBlogHandler creates a new BlogHandler with injected dependencies.
func NewBlogHandler(blogService services.BlogService, mediaConfig config.MediaConfig) *BlogHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &BlogHandler{
		blogService: blogService,
		mediaConfig: mediaConfig,
		decoder:     decoder,
	}
}

// ListBlogs handles GET / with category, search, sortBy, page and limit
// query parameters.
func (h *BlogHandler) ListBlogs(c *fiber.Ctx) error {
	values := map[string][]string{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		values[k] = append(values[k], string(value))
	})

	var filter models.BlogQueryFilter
	if err := h.decoder.Decode(&filter, values); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid query parameters")
	}

	response, err := h.blogService.ListBlogs(c.Context(), &filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(response)
}

// GetBlog handles GET /:id.
func (h *BlogHandler) GetBlog(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	}

	blog, err := h.blogService.GetBlog(c.Context(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(blog)
}

// CreateBlog handles POST /new. The body may be JSON or multipart; with
// multipart an optional featured_image file is compressed and uploaded
// before the row is written.
func (h *BlogHandler) CreateBlog(c *fiber.Ctx) error {
	req, err := h.parseCreateRequest(c)
	if err != nil {
		return errors.HandleInvalidRequestError(c, err.Error())
	}

	var imageData []byte
	if file, ferr := c.FormFile("featured_image"); ferr == nil && file != nil {
		imageData, err = h.readUpload(file)
		if err != nil {
			return errors.HandleValidationError(c, err.Error())
		}
	}

	result, err := h.blogService.CreateBlog(c.Context(), req, imageData)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(result)
}

// UpdateBlog handles PUT /:id.
func (h *BlogHandler) UpdateBlog(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	}

	var req models.UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := h.blogService.UpdateBlog(c.Context(), id, &req); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Blog updated successfully"})
}

// DeleteBlog handles DELETE /:id.
func (h *BlogHandler) DeleteBlog(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	}

	if err := h.blogService.DeleteBlog(c.Context(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Blog deleted successfully"})
}

// GetCategories handles GET /categories.
func (h *BlogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.blogService.Categories(c.Context())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"categories": categories})
}

// UploadImage handles POST /upload-image with a multipart `image` file.
func (h *BlogHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return errors.HandleInvalidRequestError(c, "An image file is required")
	}

	data, err := h.readUpload(file)
	if err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	result, err := h.blogService.UploadImage(c.Context(), data)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(result)
}

// parseCreateRequest accepts both JSON and multipart bodies. Multipart
// authors may arrive as a JSON array in a single field or as repeated
// `authors` fields.
func (h *BlogHandler) parseCreateRequest(c *fiber.Ctx) (*models.CreateBlogRequest, error) {
	contentType := string(c.Request().Header.ContentType())

	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fiber.NewError(http.StatusBadRequest, "Invalid multipart form")
		}

		formValue := func(key string) string {
			if v, ok := form.Value[key]; ok && len(v) > 0 {
				return v[0]
			}
			return ""
		}

		req := &models.CreateBlogRequest{
			Title:         formValue("title"),
			PublishedDate: formValue("publishedDate"),
			Category:      formValue("category"),
			Body:          formValue("body"),
			Authors:       parseAuthors(form.Value["authors"]),
		}
		return req, nil
	}

	var req models.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "Invalid request body")
	}
	return &req, nil
}

// parseAuthors normalizes the two accepted author encodings: a single field
// holding a JSON array, or one plain value per field.
func parseAuthors(values []string) []string {
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var decoded []string
		if err := json.Unmarshal([]byte(values[0]), &decoded); err == nil {
			return decoded
		}
	}
	return values
}

// readUpload enforces the upload constraints and returns the file bytes.
func (h *BlogHandler) readUpload(file *multipart.FileHeader) ([]byte, error) {
	maxBytes := int64(h.mediaConfig.MaxUploadSizeMB) * 1024 * 1024
	if file.Size > maxBytes {
		return nil, fiber.NewError(http.StatusBadRequest, "Image exceeds the maximum upload size")
	}

	contentType := file.Header.Get("Content-Type")
	allowed := false
	for _, mime := range h.mediaConfig.AllowedMimeTypes {
		if contentType == mime {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fiber.NewError(http.StatusBadRequest, "Unsupported image type")
	}

	f, err := file.Open()
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "Could not read the uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "Could not read the uploaded file")
	}
	if int64(len(data)) > maxBytes {
		return nil, fiber.NewError(http.StatusBadRequest, "Image exceeds the maximum upload size")
	}

	return data, nil
}
