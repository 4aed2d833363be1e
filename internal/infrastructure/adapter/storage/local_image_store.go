package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/external"
)

const maxExtensionLength = 10

// LocalImageStore writes uploads to a directory that the HTTP layer serves statically
type LocalImageStore struct {
	dir        string
	publicBase string
	logger     core.Logger
}

var _ external.ImageStore = (*LocalImageStore)(nil)

// NewLocalImageStore creates the upload directory if needed.
// publicBase is the URL prefix under which dir is served, e.g. /static/uploads.
func NewLocalImageStore(dir, publicBase string, logger core.Logger) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
	}
	return &LocalImageStore{
		dir:        dir,
		publicBase: "/" + strings.Trim(publicBase, "/"),
		logger:     logger,
	}, nil
}

// Save stores data under a fresh UUID keeping the original extension
func (s *LocalImageStore) Save(ctx context.Context, originalName string, data []byte) (external.StoredImage, error) {
	if err := ctx.Err(); err != nil {
		return external.StoredImage{}, err
	}

	name := uuid.NewString() + Extension(originalName)
	target := filepath.Join(s.dir, name)

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return external.StoredImage{}, fmt.Errorf("write %s: %w", target, err)
	}

	s.logger.Debug("Stored uploaded image", map[string]any{
		"file":  name,
		"bytes": len(data),
	})

	return external.StoredImage{
		FileName:   name,
		PublicPath: path.Join(s.publicBase, name),
	}, nil
}

// Extension returns the extension of a client file name as sent, or "" when
// it is missing or carries anything but ASCII letters and digits.
func Extension(originalName string) string {
	ext := filepath.Ext(filepath.Base(originalName))
	if len(ext) < 2 || len(ext) > maxExtensionLength {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
