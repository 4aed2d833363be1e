package external

import (
	"context"
)

// StoredImage describes an uploaded image persisted to durable storage
type StoredImage struct {
	FileName   string // generated unique name, original extension preserved
	PublicPath string // path under which the static file server exposes it
}

// ImageStore persists uploaded images. Stored files are never removed by the
// prediction workflow, even when a later step fails.
type ImageStore interface {
	Save(ctx context.Context, originalName string, data []byte) (StoredImage, error)
}
