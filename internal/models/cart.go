package models

import (
	"time"

	"github.com/google/uuid"
)

type DeliverySpeed string

const (
	DeliveryStandard DeliverySpeed = "standard"
	DeliveryExpress  DeliverySpeed = "express"
	DeliveryRush     DeliverySpeed = "rush"
)

// Flat one-time fees per delivery speed. Never multiplied by quantity.
var deliveryFees = map[DeliverySpeed]float64{
	DeliveryStandard: 0,
	DeliveryExpress:  4000,
	DeliveryRush:     10000,
}

func (s DeliverySpeed) Valid() bool {
	_, ok := deliveryFees[s]

	return ok
}

func (s DeliverySpeed) Fee() float64 {
	return deliveryFees[s]
}

// CartOwner identifies who a cart belongs to: exactly one of an
// authenticated user id or an anonymous device session id.
type CartOwner struct {
	UserID    *uuid.UUID
	SessionID *string
}

func (o CartOwner) IsZero() bool {
	return o.UserID == nil && o.SessionID == nil
}

// CustomDimensions is the nullable structured payload on a line item. It
// carries banner dimensions for area-priced products and the uploaded
// artwork reference when one was attached.
type CustomDimensions struct {
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	ArtworkURL string  `json:"artwork_url,omitempty"`
}

// CartLineItem is a persisted cart entry. Product name and description are
// snapshotted at add time so later catalog edits do not alter historic
// display. Flat fees are stored apart from the unit price so quantity
// updates never re-scale a one-time fee.
type CartLineItem struct {
	ID                 uuid.UUID         `json:"id"`
	CartID             uuid.UUID         `json:"cart_id"`
	ProductID          uuid.UUID         `json:"product_id"`
	ProductName        string            `json:"product_name"`
	ProductDescription string            `json:"product_description"`
	PricingModel       PricingModel      `json:"pricing_model,omitempty"`
	Quantity           int               `json:"quantity"`
	UnitPrice          float64           `json:"unit_price"`
	FlatFees           float64           `json:"flat_fees"`
	TotalPrice         float64           `json:"total_price"`
	SelectedSpecs      []string          `json:"selected_specs"`
	CustomDimensions   *CustomDimensions `json:"custom_dimensions,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

// QuantityScales reports whether the line's total scales with quantity.
// Area-based and tiered lines are priced as a single physical item.
func (li *CartLineItem) QuantityScales() bool {
	return li.PricingModel != PricingAreaBased && li.PricingModel != PricingTieredPackage
}

type Cart struct {
	ID        uuid.UUID      `json:"id"`
	UserID    *uuid.UUID     `json:"user_id,omitempty"`
	SessionID *string        `json:"session_id,omitempty"`
	Items     []CartLineItem `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Total is derived from the current line set on every read; it is never
// stored where it could desync.
func (c *Cart) Total() float64 {
	var total float64

	for i := range c.Items {
		total += c.Items[i].TotalPrice
	}

	return total
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	var count int

	for i := range c.Items {
		count += c.Items[i].Quantity
	}

	return count
}

// CartView is the response shape for cart reads, with the derived totals
// computed at serialization time.
type CartView struct {
	*Cart

	CartTotal float64 `json:"cart_total"`
	ItemCount int     `json:"item_count"`
}

func NewCartView(cart *Cart) *CartView {
	return &CartView{
		Cart:      cart,
		CartTotal: cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

// AddLineRequest carries a shopper's finished configuration for one
// product. Fields that do not apply to the product's pricing model are
// ignored by validation in the pricing package.
type AddLineRequest struct {
	ProductID         uuid.UUID         `json:"product_id" validate:"required"`
	Quantity          *int              `json:"quantity,omitempty"`
	Selections        map[string]string `json:"selections,omitempty"`
	DeliverySpeed     DeliverySpeed     `json:"delivery_speed,omitempty"`
	NeedsDesignAssist bool              `json:"needs_design_assist,omitempty"`
	Width             float64           `json:"width,omitempty"`
	Height            float64           `json:"height,omitempty"`
	Tier              string            `json:"tier,omitempty"`
	Unit              string            `json:"unit,omitempty"`
	ArtworkURL        string            `json:"artwork_url,omitempty"`
}

type UpdateLineQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}
