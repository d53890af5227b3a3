package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/metrics"
	"github.com/printhaus/storefront-platform/internal/models"
	repository "github.com/printhaus/storefront-platform/internal/repositories"
	"github.com/printhaus/storefront-platform/pkg/mailer"
)

type OrderService interface {
	Checkout(ctx context.Context, owner models.CartOwner, req *models.CheckoutRequest) (*models.Order, error)
	GetOrderForOwner(ctx context.Context, owner models.CartOwner, id uuid.UUID) (*models.Order, error)
	ListOrdersForOwner(ctx context.Context, owner models.CartOwner) ([]*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, page, size int) ([]*models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
	carts  repository.CartRepository
	mail   mailer.Mailer
	logger *slog.Logger
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, mail mailer.Mailer, logger *slog.Logger) OrderService {
	return &orderService{orders: orders, carts: carts, mail: mail, logger: logger}
}

// Checkout converts the owner's cart into an order. The cart lines are
// copied as-is; prices were fixed when each line was added.
func (s *orderService) Checkout(ctx context.Context, owner models.CartOwner, req *models.CheckoutRequest) (*models.Order, error) {
	if owner.IsZero() {
		return nil, errors.BadRequestError("A user or session is required")
	}

	cart, err := s.carts.GetCartByOwner(ctx, owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.BadRequestError("Cart is empty")
		}

		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(cart.Items) == 0 {
		return nil, errors.BadRequestError("Cart is empty")
	}

	subtotal := cart.Total()

	order := &models.Order{
		ID:              uuid.New(),
		OrderNumber:     newOrderNumber(),
		UserID:          owner.UserID,
		SessionID:       owner.SessionID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusUnpaid,
		Subtotal:        subtotal,
		TotalAmount:     subtotal,
	}

	for i := range cart.Items {
		line := &cart.Items[i]

		order.Items = append(order.Items, models.OrderLineItem{
			ID:               uuid.New(),
			OrderID:          order.ID,
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			PricingModel:     line.PricingModel,
			Quantity:         line.Quantity,
			UnitPrice:        line.UnitPrice,
			FlatFees:         line.FlatFees,
			TotalPrice:       line.TotalPrice,
			SelectedSpecs:    line.SelectedSpecs,
			CustomDimensions: line.CustomDimensions,
		})
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	metrics.OrdersPlaced.Inc()

	// The order is committed; a failed cart clear or confirmation mail must
	// not undo the checkout.
	if err := s.carts.ClearCart(ctx, cart.ID); err != nil {
		s.logger.Warn("Failed to clear cart after checkout",
			slog.String("orderNumber", order.OrderNumber), slog.String("error", err.Error()))
	}

	if err := s.mail.SendOrderConfirmation(ctx, order); err != nil {
		s.logger.Warn("Failed to send order confirmation",
			slog.String("orderNumber", order.OrderNumber), slog.String("error", err.Error()))
	}

	return order, nil
}

func (s *orderService) GetOrderForOwner(ctx context.Context, owner models.CartOwner, id uuid.UUID) (*models.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	// A mismatch reads as not-found so order ids cannot be probed.
	if !ownerMatches(owner, order) {
		return nil, errors.NotFoundError("Order not found")
	}

	return order, nil
}

func (s *orderService) ListOrdersForOwner(ctx context.Context, owner models.CartOwner) ([]*models.Order, error) {
	if owner.IsZero() {
		return nil, errors.BadRequestError("A user or session is required")
	}

	orders, err := s.orders.ListOrdersByOwner(ctx, owner)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, page, size int) ([]*models.Order, int, error) {
	orders, total, err := s.orders.ListOrders(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	if !req.Status.Valid() {
		return nil, errors.ValidationError("Unknown order status")
	}

	if err := s.orders.UpdateOrderStatus(ctx, id, req.Status); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update order status").WithError(err)
	}

	return s.GetOrder(ctx, id)
}

func ownerMatches(owner models.CartOwner, order *models.Order) bool {
	switch {
	case owner.UserID != nil:
		return order.UserID != nil && *order.UserID == *owner.UserID
	case owner.SessionID != nil:
		return order.SessionID != nil && *order.SessionID == *owner.SessionID
	}

	return false
}

// newOrderNumber yields a short human-readable reference like
// ORD-20260830-3FA2C1.
func newOrderNumber() string {
	id := uuid.New()

	return fmt.Sprintf("ORD-%s-%X", time.Now().UTC().Format("20060102"), id[:3])
}
