// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"

	platformconfig "github.com/quillhub/blog-api/internal/platform/config"
	"github.com/quillhub/blog-api/media/models"
	"github.com/quillhub/blog-api/media/provider"
)

// keyPrefix namespaces uploaded blog images inside the bucket.
const keyPrefix = "blog"

type service struct {
	provider provider.BlobProvider
	config   *platformconfig.MediaConfig
}

// NewMediaService creates a new media service.
func NewMediaService(blobProvider provider.BlobProvider, cfg *platformconfig.MediaConfig) MediaService {
	return &service{
		provider: blobProvider,
		config:   cfg,
	}
}

// ProcessAndUpload compresses the image and uploads it, returning the stored
// descriptor. The public ID carries no extension; the object key does.
func (s *service) ProcessAndUpload(ctx context.Context, data []byte) (*models.ImageDescriptor, error) {
	compressed, err := CompressImage(data, s.config.MaxWidth, s.config.JPEGQuality)
	if err != nil {
		return nil, fmt.Errorf("image compression failed: %w", err)
	}

	imageID := uuid.Must(uuid.NewV4())
	publicID := fmt.Sprintf("%s/%s", keyPrefix, imageID.String())
	key := objectKey(publicID, compressed.Format)

	contentType := "image/jpeg"
	if compressed.Format == "png" {
		contentType = "image/png"
	}

	if err := s.provider.Upload(ctx, key, contentType, compressed.Data); err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	url := s.provider.PublicURL(key)
	return &models.ImageDescriptor{
		URL:          url,
		SecureURL:    url,
		PublicID:     publicID,
		Width:        compressed.Width,
		Height:       compressed.Height,
		Format:       compressed.Format,
		ResourceType: "image",
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Delete removes the stored object for a public ID. The descriptor does not
// travel with the delete call, so each candidate key is probed with a HEAD
// request and only the keys actually present are deleted.
func (s *service) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return fmt.Errorf("public ID is required")
	}

	for _, format := range []string{"jpeg", "png"} {
		key := objectKey(publicID, format)
		if _, err := s.provider.Head(ctx, key); err != nil {
			continue
		}
		if err := s.provider.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func objectKey(publicID, format string) string {
	ext := "jpg"
	if format == "png" {
		ext = "png"
	}
	return fmt.Sprintf("%s.%s", publicID, ext)
}
