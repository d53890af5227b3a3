package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}

	return false
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// OrderLineItem mirrors the cart line it was created from; the snapshot is
// copied, not referenced, so the order stays stable after catalog edits.
type OrderLineItem struct {
	ID               uuid.UUID         `json:"id"`
	OrderID          uuid.UUID         `json:"order_id"`
	ProductID        uuid.UUID         `json:"product_id"`
	ProductName      string            `json:"product_name"`
	PricingModel     PricingModel      `json:"pricing_model,omitempty"`
	Quantity         int               `json:"quantity"`
	UnitPrice        float64           `json:"unit_price"`
	FlatFees         float64           `json:"flat_fees"`
	TotalPrice       float64           `json:"total_price"`
	SelectedSpecs    []string          `json:"selected_specs"`
	CustomDimensions *CustomDimensions `json:"custom_dimensions,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"order_number"`
	UserID          *uuid.UUID      `json:"user_id,omitempty"`
	SessionID       *string         `json:"session_id,omitempty"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	DeliveryAddress string          `json:"delivery_address"`
	Notes           string          `json:"notes,omitempty"`
	Status          OrderStatus     `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	Subtotal        float64         `json:"subtotal"`
	TotalAmount     float64         `json:"total_amount"`
	Items           []OrderLineItem `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" validate:"required,min=2,max=200"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	Notes           string `json:"notes,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}
