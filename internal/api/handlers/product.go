package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/printhaus/storefront-platform/internal/api/middleware"
	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
	service "github.com/printhaus/storefront-platform/internal/services"
	"github.com/printhaus/storefront-platform/internal/utils"
	"github.com/printhaus/storefront-platform/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// ListProducts serves the shopper catalog: active products only, with
// optional free-text search and category filter.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := listQueryFromRequest(r)
		query.ActiveOnly = true

		h.list(w, r, query)
	}
}

// ListAllProducts is the admin view and includes deactivated products.
func (h *ProductHandler) ListAllProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.list(w, r, listQueryFromRequest(r))
	}
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request, query *models.ListProductsQuery) {
	logger := middleware.LoggerFromContext(r.Context())

	products, total, err := h.productService.ListProducts(r.Context(), query)
	if err != nil {
		logger.Error("Failed to fetch products", slog.String("error", err.Error()))
		response.Error(w, err)

		return
	}

	response.Success(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    total,
		"page":     query.Page,
	})
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product created", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		logger.Info("Product updated", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			response.Error(w, err)

			return
		}

		logger.Info("Product deleted", slog.String("productId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}

func listQueryFromRequest(r *http.Request) *models.ListProductsQuery {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	return &models.ListProductsQuery{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Page:     page,
		PageSize: pageSize,
	}
}

// parseIDParam reads the {id} path segment, writing the error response on
// failure.
func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, errors.BadRequestError("Invalid id"))

		return uuid.Nil, false
	}

	return id, true
}
