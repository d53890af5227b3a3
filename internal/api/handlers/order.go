package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/printhaus/storefront-platform/internal/api/middleware"
	"github.com/printhaus/storefront-platform/internal/models"
	service "github.com/printhaus/storefront-platform/internal/services"
	"github.com/printhaus/storefront-platform/internal/utils"
	"github.com/printhaus/storefront-platform/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		owner, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.Checkout(r.Context(), owner, &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Order placed", slog.String("orderNumber", order.OrderNumber))
		response.Success(w, http.StatusCreated, order)
	}
}

func (h *OrderHandler) ListMyOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		orders, err := h.orderService.ListOrdersForOwner(r.Context(), owner)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

func (h *OrderHandler) GetMyOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		order, err := h.orderService.GetOrderForOwner(r.Context(), owner, id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders is the admin view across all customers.
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

		orders, total, err := h.orderService.ListOrders(r.Context(), page, pageSize)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"orders": orders,
			"total":  total,
			"page":   page,
		})
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		logger.Info("Order status updated",
			slog.String("orderNumber", order.OrderNumber), slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}
