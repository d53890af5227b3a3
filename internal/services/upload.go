package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/pkg/filestore"
)

// MaxUploadBytes caps artwork uploads at 50MB.
const MaxUploadBytes = 50 << 20

// Print-ready artwork formats accepted from shoppers.
var allowedExtensions = map[string]bool{
	".png": true,
	".pdf": true,
	".ai":  true,
	".eps": true,
}

var allowedContentTypes = map[string]bool{
	"image/png":                true,
	"application/pdf":          true,
	"application/postscript":   true,
	"application/illustrator":  true,
	"application/octet-stream": true,
}

type UploadService interface {
	StoreArtwork(ctx context.Context, fileName string, size int64, contentType string, r io.Reader) (*filestore.SavedFile, error)
}

type uploadService struct {
	store filestore.Store
}

func NewUploadService(store filestore.Store) UploadService {
	return &uploadService{store: store}
}

func (s *uploadService) StoreArtwork(ctx context.Context, fileName string, size int64, contentType string, r io.Reader) (*filestore.SavedFile, error) {
	if size > MaxUploadBytes {
		return nil, errors.UploadRejectedError("File exceeds the 50MB upload limit")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		return nil, errors.UploadRejectedError("Only PNG, PDF, AI and EPS files are accepted")
	}

	// Browsers report vague types for design formats; the extension check
	// above is the real gate.
	if contentType != "" {
		mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])
		if !allowedContentTypes[strings.ToLower(mediaType)] {
			return nil, errors.UploadRejectedError(fmt.Sprintf("Unsupported content type %q", mediaType))
		}
	}

	// LimitReader backstops clients that lie about the declared size.
	saved, err := s.store.Save(fileName, io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, errors.InternalError("Failed to store artwork").WithError(err)
	}

	if saved.Size > MaxUploadBytes {
		return nil, errors.UploadRejectedError("File exceeds the 50MB upload limit")
	}

	return saved, nil
}
