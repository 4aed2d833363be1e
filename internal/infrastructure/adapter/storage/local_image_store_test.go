package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/logger"
)

func TestLocalImageStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalImageStore(dir, "/static/uploads/", logger.NewNoopLogger())
	require.NoError(t, err)

	t.Run("Writes file under a generated name", func(t *testing.T) {
		stored, err := store.Save(context.Background(), "My Note.JPG", []byte("jpeg"))

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(stored.FileName, ".JPG"))
		_, parseErr := uuid.Parse(strings.TrimSuffix(stored.FileName, ".JPG"))
		assert.NoError(t, parseErr)
		assert.Equal(t, "/static/uploads/"+stored.FileName, stored.PublicPath)

		content, err := os.ReadFile(filepath.Join(dir, stored.FileName))
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg"), content)
	})

	t.Run("Names never collide", func(t *testing.T) {
		a, err := store.Save(context.Background(), "a.png", []byte("1"))
		require.NoError(t, err)
		b, err := store.Save(context.Background(), "a.png", []byte("2"))
		require.NoError(t, err)

		assert.NotEqual(t, a.FileName, b.FileName)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.Save(ctx, "a.png", []byte("1"))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestExtension(t *testing.T) {
	testCases := map[string]string{
		"note.jpg":           ".jpg",
		"NOTE.PNG":           ".PNG",
		"scan.Jpeg":          ".Jpeg",
		"archive.tar.webp":   ".webp",
		"noext":              "",
		"":                   "",
		"../../etc/passwd":   "",
		"evil.p/hp":          "",
		"weird.j pg":         "",
		"x.averyverylongext": "",
	}

	for in, expected := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, Extension(in))
		})
	}
}
