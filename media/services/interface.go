package services

import (
	"context"

	"github.com/quillhub/blog-api/media/models"
)

// MediaService compresses images and stores them with the blob provider.
// Both operations are synchronous; failures must be surfaced to the caller
// so a post create can abort instead of committing without its image.
type MediaService interface {
	// ProcessAndUpload compresses data and uploads the result, returning
	// the stored image descriptor.
	ProcessAndUpload(ctx context.Context, data []byte) (*models.ImageDescriptor, error)

	// Delete removes the stored object for a public ID.
	Delete(ctx context.Context, publicID string) error
}
