package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/printhaus/storefront-platform/internal/errors"
	service "github.com/printhaus/storefront-platform/internal/services"
	"github.com/printhaus/storefront-platform/pkg/filestore"
)

func TestStoreArtwork(t *testing.T) {
	ctx := t.Context()

	store, err := filestore.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	uploadService := service.NewUploadService(store)

	t.Run("Success - PNG artwork", func(t *testing.T) {
		// Act
		saved, err := uploadService.StoreArtwork(ctx, "logo.png", 14, "image/png", strings.NewReader("fake png bytes"))

		// Assert
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(saved.URL, ".png"))
		assert.Equal(t, int64(14), saved.Size)
	})

	t.Run("Success - Vague browser content type passes on extension", func(t *testing.T) {
		// Act
		saved, err := uploadService.StoreArtwork(ctx, "artwork.ai", 8, "application/octet-stream", strings.NewReader("ai bytes"))

		// Assert
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(saved.URL, ".ai"))
	})

	t.Run("Failure - Disallowed extension", func(t *testing.T) {
		// Act
		saved, err := uploadService.StoreArtwork(ctx, "notes.docx", 5, "", strings.NewReader("docx"))

		// Assert
		assert.Nil(t, saved)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeUploadRejected))
	})

	t.Run("Failure - Disallowed content type", func(t *testing.T) {
		// Act
		saved, err := uploadService.StoreArtwork(ctx, "sneaky.png", 5, "text/html; charset=utf-8", strings.NewReader("html"))

		// Assert
		assert.Nil(t, saved)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeUploadRejected))
	})

	t.Run("Failure - Declared size over the limit", func(t *testing.T) {
		// Act
		saved, err := uploadService.StoreArtwork(ctx, "huge.pdf", service.MaxUploadBytes+1, "application/pdf", strings.NewReader("pdf"))

		// Assert
		assert.Nil(t, saved)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeUploadRejected))
	})
}
