package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogErrors "github.com/quillhub/blog-api/blog/errors"
	"github.com/quillhub/blog-api/blog/models"
	"github.com/quillhub/blog-api/internal/platform/config"
)

// stubBlogService returns canned results so handler tests exercise only
// HTTP translation.
type stubBlogService struct {
	listResult   *models.BlogsListResponse
	getResult    *models.BlogResponse
	createResult *models.CreateBlogResponse
	uploadResult *models.UploadImageResponse
	categories   []string
	err          error

	lastFilter    *models.BlogQueryFilter
	lastCreateReq *models.CreateBlogRequest
	lastImageData []byte
	lastID        uuid.UUID
}

func (s *stubBlogService) ListBlogs(ctx context.Context, filter *models.BlogQueryFilter) (*models.BlogsListResponse, error) {
	s.lastFilter = filter
	return s.listResult, s.err
}

func (s *stubBlogService) GetBlog(ctx context.Context, id uuid.UUID) (*models.BlogResponse, error) {
	s.lastID = id
	return s.getResult, s.err
}

func (s *stubBlogService) CreateBlog(ctx context.Context, req *models.CreateBlogRequest, imageData []byte) (*models.CreateBlogResponse, error) {
	s.lastCreateReq = req
	s.lastImageData = imageData
	return s.createResult, s.err
}

func (s *stubBlogService) UpdateBlog(ctx context.Context, id uuid.UUID, req *models.UpdateBlogRequest) error {
	s.lastID = id
	return s.err
}

func (s *stubBlogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	s.lastID = id
	return s.err
}

func (s *stubBlogService) Categories(ctx context.Context) ([]string, error) {
	return s.categories, s.err
}

func (s *stubBlogService) UploadImage(ctx context.Context, data []byte) (*models.UploadImageResponse, error) {
	s.lastImageData = data
	return s.uploadResult, s.err
}

func testMediaConfig() config.MediaConfig {
	return config.MediaConfig{
		MaxWidth:         1600,
		JPEGQuality:      82,
		MaxUploadSizeMB:  2,
		AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/webp"},
	}
}

func newBlogTestApp(svc *stubBlogService) *fiber.App {
	app := fiber.New()
	h := NewBlogHandler(svc, testMediaConfig())
	app.Get("/blog", h.ListBlogs)
	app.Get("/blog/categories", h.GetCategories)
	app.Get("/blog/:id", h.GetBlog)
	app.Post("/blog/new", h.CreateBlog)
	app.Post("/blog/upload-image", h.UploadImage)
	app.Put("/blog/:id", h.UpdateBlog)
	app.Delete("/blog/:id", h.DeleteBlog)
	return app
}

func TestListBlogsHandler(t *testing.T) {
	t.Parallel()

	t.Run("Decodes query parameters into the filter", func(t *testing.T) {
		t.Parallel()

		svc := &stubBlogService{listResult: &models.BlogsListResponse{}}
		app := newBlogTestApp(svc)

		req := httptest.NewRequest(http.MethodGet, "/blog?category=Engineering&search=go&sortBy=popular&page=2&limit=5", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.NotNil(t, svc.lastFilter)
		assert.Equal(t, "Engineering", svc.lastFilter.Category)
		assert.Equal(t, "go", svc.lastFilter.Search)
		assert.Equal(t, "popular", svc.lastFilter.SortBy)
		assert.Equal(t, 2, svc.lastFilter.Page)
		assert.Equal(t, 5, svc.lastFilter.Limit)
	})

	t.Run("Unknown query keys are ignored", func(t *testing.T) {
		t.Parallel()

		svc := &stubBlogService{listResult: &models.BlogsListResponse{}}
		app := newBlogTestApp(svc)

		req := httptest.NewRequest(http.MethodGet, "/blog?unknown=1", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestGetBlogHandler(t *testing.T) {
	t.Parallel()

	t.Run("Returns 404 for a non-UUID id", func(t *testing.T) {
		t.Parallel()

		app := newBlogTestApp(&stubBlogService{})
		req := httptest.NewRequest(http.MethodGet, "/blog/not-a-uuid", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Returns 404 when the blog does not exist", func(t *testing.T) {
		t.Parallel()

		svc := &stubBlogService{err: blogErrors.ErrBlogNotFound}
		app := newBlogTestApp(svc)

		req := httptest.NewRequest(http.MethodGet, "/blog/"+uuid.Must(uuid.NewV4()).String(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body blogErrors.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, blogErrors.CodeBlogNotFound, body.Code)
	})
}

func TestCreateBlogHandler(t *testing.T) {
	t.Parallel()

	t.Run("Accepts a JSON body", func(t *testing.T) {
		t.Parallel()

		svc := &stubBlogService{createResult: &models.CreateBlogResponse{BlogID: uuid.Must(uuid.NewV4())}}
		app := newBlogTestApp(svc)

		body, err := json.Marshal(models.CreateBlogRequest{
			Title:         "Hello",
			PublishedDate: "2025-06-01",
			Category:      "Engineering",
			Authors:       []string{"Ann"},
			Body:          "body",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/blog/new", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Nil(t, svc.lastImageData)
		assert.Equal(t, []string{"Ann"}, svc.lastCreateReq.Authors)
	})

	t.Run("Accepts multipart with JSON-encoded authors", func(t *testing.T) {
		t.Parallel()

		svc := &stubBlogService{createResult: &models.CreateBlogResponse{BlogID: uuid.Must(uuid.NewV4())}}
		app := newBlogTestApp(svc)

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("title", "Hello"))
		require.NoError(t, w.WriteField("publishedDate", "2025-06-01"))
		require.NoError(t, w.WriteField("category", "Engineering"))
		require.NoError(t, w.WriteField("authors", `["Ann","Ben"]`))
		require.NoError(t, w.WriteField("body", "body"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/blog/new", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, []string{"Ann", "Ben"}, svc.lastCreateReq.Authors)
	})

	t.Run("Rejects an unsupported image type", func(t *testing.T) {
		t.Parallel()

		app := newBlogTestApp(&stubBlogService{})

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("title", "Hello"))
		fw, err := w.CreateFormFile("featured_image", "note.txt")
		require.NoError(t, err)
		_, err = fw.Write([]byte("plain text"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/blog/new", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestParseAuthors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Ann", "Ben"}, parseAuthors([]string{`["Ann","Ben"]`}))
	assert.Equal(t, []string{"Ann", "Ben"}, parseAuthors([]string{"Ann", "Ben"}))
	assert.Equal(t, []string{"[broken"}, parseAuthors([]string{"[broken"}))
	assert.Nil(t, parseAuthors(nil))
}

func TestUploadImageHandler(t *testing.T) {
	t.Parallel()

	t.Run("Requires a file", func(t *testing.T) {
		t.Parallel()

		app := newBlogTestApp(&stubBlogService{})
		req := httptest.NewRequest(http.MethodPost, "/blog/upload-image", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Returns the upload descriptor", func(t *testing.T) {
		t.Parallel()

		svc := &stubBlogService{uploadResult: &models.UploadImageResponse{PublicID: "blog/x", Format: "jpeg"}}
		app := newBlogTestApp(svc)

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="photo.jpg"`)
		header.Set("Content-Type", "image/jpeg")
		fw, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake-jpeg-bytes"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/blog/upload-image", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []byte("fake-jpeg-bytes"), svc.lastImageData)

		var body models.UploadImageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "blog/x", body.PublicID)
	})
}

func TestDeleteBlogHandler(t *testing.T) {
	t.Parallel()

	svc := &stubBlogService{}
	app := newBlogTestApp(svc)

	id := uuid.Must(uuid.NewV4())
	req := httptest.NewRequest(http.MethodDelete, "/blog/"+id.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, svc.lastID)
}
