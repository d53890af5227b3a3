package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/printhaus/storefront-platform/internal/models"
	service "github.com/printhaus/storefront-platform/internal/services"
	"github.com/printhaus/storefront-platform/internal/utils"
	"github.com/printhaus/storefront-platform/internal/utils/response"
)

type BannerHandler struct {
	bannerService service.BannerService
	validator     *validator.Validate
}

func NewBannerHandler(bannerService service.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService, validator: validator.New()}
}

// ListActiveBanners feeds the storefront landing page.
func (h *BannerHandler) ListActiveBanners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := h.bannerService.ListActiveBanners(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, banners)
	}
}

func (h *BannerHandler) ListBanners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := h.bannerService.ListBanners(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, banners)
	}
}

func (h *BannerHandler) CreateBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateBannerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		banner, err := h.bannerService.CreateBanner(r.Context(), &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, banner)
	}
}

func (h *BannerHandler) UpdateBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		var req models.UpdateBannerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		banner, err := h.bannerService.UpdateBanner(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, banner)
	}
}

func (h *BannerHandler) DeleteBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		if err := h.bannerService.DeleteBanner(r.Context(), id); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}

func (h *BannerHandler) ListActiveFlashBanners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := h.bannerService.ListActiveFlashBanners(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, banners)
	}
}

func (h *BannerHandler) ListFlashBanners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := h.bannerService.ListFlashBanners(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, banners)
	}
}

func (h *BannerHandler) CreateFlashBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateFlashBannerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		banner, err := h.bannerService.CreateFlashBanner(r.Context(), &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, banner)
	}
}

func (h *BannerHandler) UpdateFlashBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		var req models.UpdateFlashBannerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		banner, err := h.bannerService.UpdateFlashBanner(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, banner)
	}
}

func (h *BannerHandler) DeleteFlashBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		if err := h.bannerService.DeleteFlashBanner(r.Context(), id); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}
