package services

import (
	"context"
	"sort"

	uuid "github.com/gofrs/uuid"

	blogErrors "github.com/quillhub/blog-api/blog/errors"
	"github.com/quillhub/blog-api/blog/models"
	mediaModels "github.com/quillhub/blog-api/media/models"
)

// MockBlogRepository is an in-memory BlogRepository for tests.
type MockBlogRepository struct {
	Blogs map[uuid.UUID]*models.Blog

	// CreateErr, when set, is returned by Create.
	CreateErr error
}

// NewMockBlogRepository creates an empty in-memory repository.
func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{Blogs: make(map[uuid.UUID]*models.Blog)}
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	stored := *blog
	m.Blogs[blog.ID] = &stored
	return nil
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	blog, ok := m.Blogs[id]
	if !ok {
		return nil, blogErrors.ErrBlogNotFound
	}
	out := *blog
	return &out, nil
}

func (m *MockBlogRepository) matching(filter *models.BlogQueryFilter) []models.Blog {
	var out []models.Blog
	for _, b := range m.Blogs {
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if filter.SortBy == models.SortOldest {
			return out[i].PublishedDate < out[j].PublishedDate
		}
		return out[i].PublishedDate > out[j].PublishedDate
	})
	return out
}

func (m *MockBlogRepository) Find(ctx context.Context, filter *models.BlogQueryFilter) ([]models.Blog, error) {
	all := m.matching(filter)
	start := (filter.Page - 1) * filter.Limit
	if start >= len(all) {
		return []models.Blog{}, nil
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (m *MockBlogRepository) Count(ctx context.Context, filter *models.BlogQueryFilter) (int, error) {
	return len(m.matching(filter)), nil
}

func (m *MockBlogRepository) Update(ctx context.Context, id uuid.UUID, req *models.UpdateBlogRequest) error {
	blog, ok := m.Blogs[id]
	if !ok {
		return blogErrors.ErrBlogNotFound
	}
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.PublishedDate != nil {
		blog.PublishedDate = *req.PublishedDate
	}
	if req.Category != nil {
		blog.Category = *req.Category
	}
	if req.Authors != nil {
		blog.Authors = models.StringList(*req.Authors)
	}
	if req.Body != nil {
		blog.Body = *req.Body
	}
	return nil
}

func (m *MockBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.Blogs[id]; !ok {
		return blogErrors.ErrBlogNotFound
	}
	delete(m.Blogs, id)
	return nil
}

func (m *MockBlogRepository) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	for _, b := range m.Blogs {
		if b.Category != "" {
			seen[b.Category] = true
		}
	}
	var out []string
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

// MockMediaService is an in-memory media pipeline for tests.
type MockMediaService struct {
	UploadErr error
	DeleteErr error

	Uploaded []string
	Deleted  []string

	// Descriptor returned by ProcessAndUpload when UploadErr is nil.
	Descriptor mediaModels.ImageDescriptor
}

func NewMockMediaService() *MockMediaService {
	return &MockMediaService{
		Descriptor: mediaModels.ImageDescriptor{
			URL:          "https://cdn.example/blog/test.jpg",
			SecureURL:    "https://cdn.example/blog/test.jpg",
			PublicID:     "blog/test",
			Width:        640,
			Height:       480,
			Format:       "jpeg",
			ResourceType: "image",
		},
	}
}

func (m *MockMediaService) ProcessAndUpload(ctx context.Context, data []byte) (*mediaModels.ImageDescriptor, error) {
	if m.UploadErr != nil {
		return nil, m.UploadErr
	}
	m.Uploaded = append(m.Uploaded, m.Descriptor.PublicID)
	d := m.Descriptor
	return &d, nil
}

func (m *MockMediaService) Delete(ctx context.Context, publicID string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, publicID)
	return nil
}
