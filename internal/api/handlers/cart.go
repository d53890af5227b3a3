package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/printhaus/storefront-platform/internal/api/middleware"
	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
	service "github.com/printhaus/storefront-platform/internal/services"
	"github.com/printhaus/storefront-platform/internal/utils"
	"github.com/printhaus/storefront-platform/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), owner)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		owner, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		var req models.AddLineRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddLine(r.Context(), owner, &req)
		if err != nil {
			logger.Warn("Failed to add cart line",
				slog.String("productId", req.ProductID.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Cart line added", slog.String("productId", req.ProductID.String()))
		response.Success(w, http.StatusCreated, cart)
	}
}

func (h *CartHandler) UpdateLineQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		lineID, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		var req models.UpdateLineQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.UpdateLineQuantity(r.Context(), owner, lineID, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		lineID, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.RemoveLine(r.Context(), owner, lineID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), owner)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ownerFromRequest fetches the owner resolved by the middleware; its
// absence means the route was wired without ResolveOwner.
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (models.CartOwner, bool) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok || owner.IsZero() {
		response.Error(w, errors.BadRequestError("A user or session is required"))

		return models.CartOwner{}, false
	}

	return owner, true
}
