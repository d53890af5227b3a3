package handlers

import (
	"log/slog"
	"net/http"

	"github.com/printhaus/storefront-platform/internal/api/middleware"
	"github.com/printhaus/storefront-platform/internal/errors"
	service "github.com/printhaus/storefront-platform/internal/services"
	"github.com/printhaus/storefront-platform/internal/utils/response"
)

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadArtwork accepts a multipart form with a single "file" field and
// returns the stored file's public URL for use in a cart configuration.
func (h *UploadHandler) UploadArtwork() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			response.Error(w, errors.BadRequestError("A 'file' form field is required").WithError(err))

			return
		}

		defer file.Close()

		saved, err := h.uploadService.StoreArtwork(r.Context(), header.Filename, header.Size,
			header.Header.Get("Content-Type"), file)
		if err != nil {
			logger.Warn("Artwork upload rejected",
				slog.String("fileName", header.Filename), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Artwork stored", slog.String("fileName", saved.Name), slog.Int64("size", saved.Size))
		response.Success(w, http.StatusCreated, saved)
	}
}
