// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package provider

import "context"

// BlobProvider abstracts the object storage backend used for images.
type BlobProvider interface {
	// Upload stores data under key with the given content type.
	Upload(ctx context.Context, key string, contentType string, data []byte) error

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// Head returns the stored object size in bytes.
	Head(ctx context.Context, key string) (int64, error)

	// PublicURL returns the delivery URL for an object key.
	PublicURL(key string) string
}
