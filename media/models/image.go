package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// ImageDescriptor describes a processed image stored with the blob provider.
// It is persisted as a JSONB column on the owning entity.
type ImageDescriptor struct {
	URL          string `json:"url"`
	SecureURL    string `json:"secure_url"`
	PublicID     string `json:"public_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Format       string `json:"format"`
	ResourceType string `json:"resource_type"`
	CreatedAt    string `json:"created_at"`
}

// ImageRef is the reduced descriptor exposed on list responses. Raw URLs are
// omitted so clients construct delivery URLs from the public ID.
type ImageRef struct {
	PublicID     string `json:"public_id"`
	Format       string `json:"format"`
	ResourceType string `json:"resource_type"`
}

// Ref returns the reduced descriptor.
func (d *ImageDescriptor) Ref() *ImageRef {
	if d == nil {
		return nil
	}
	return &ImageRef{
		PublicID:     d.PublicID,
		Format:       d.Format,
		ResourceType: d.ResourceType,
	}
}

// NullImageDescriptor is a nullable ImageDescriptor that implements
// sql.Scanner and driver.Valuer for JSONB columns. Malformed stored JSON
// degrades to an absent image rather than failing the read.
type NullImageDescriptor struct {
	ImageDescriptor
	Valid bool
}

// Scan implements the sql.Scanner interface.
func (n *NullImageDescriptor) Scan(value interface{}) error {
	n.ImageDescriptor = ImageDescriptor{}
	n.Valid = false

	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for image descriptor column")
	}

	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if err := json.Unmarshal(data, &n.ImageDescriptor); err != nil {
		// Tolerate legacy/corrupt values: treat them as no image.
		return nil
	}

	n.Valid = true
	return nil
}

// Value implements the driver.Valuer interface.
func (n NullImageDescriptor) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return json.Marshal(n.ImageDescriptor)
}

// Ptr returns the descriptor, or nil when absent. Used when serializing
// responses where a missing image must render as JSON null.
func (n NullImageDescriptor) Ptr() *ImageDescriptor {
	if !n.Valid {
		return nil
	}
	d := n.ImageDescriptor
	return &d
}
