package models

import (
	"time"

	"github.com/google/uuid"
)

// PricingModel selects how a product's base line is priced. Products
// without a special model use the generic axis-additive computation.
type PricingModel string

const (
	PricingAreaBased      PricingModel = "area_based"
	PricingTieredPackage  PricingModel = "tiered_package"
	PricingPerUnitCatalog PricingModel = "per_unit_catalog"
)

// CustomizationOption is one selectable value on an axis. PriceDelta may be
// negative (discount) or positive (upcharge) and applies per unit.
type CustomizationOption struct {
	Value      string  `json:"value"`
	Label      string  `json:"label"`
	PriceDelta float64 `json:"price_delta"`
}

// CustomizationAxis is a named dimension of choice, e.g. "Paper Type".
// Every axis carries at least one option; a configuration selects exactly
// one option per axis, falling back to the first option as default.
type CustomizationAxis struct {
	Type    string                `json:"type"`
	Name    string                `json:"name"`
	Options []CustomizationOption `json:"options"`
}

type PriceTier struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

type UnitPrice struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SpecialPricing overrides the generic additive formula. At most one model
// applies per product; only the fields belonging to Model are populated.
type SpecialPricing struct {
	Model           PricingModel `json:"model"`
	RatePerUnitArea float64      `json:"rate_per_unit_area,omitempty"`
	Tiers           []PriceTier  `json:"tiers,omitempty"`
	Units           []UnitPrice  `json:"units,omitempty"`
}

type Product struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Category    string              `json:"category,omitempty"`
	Description string              `json:"description"`
	BasePrice   float64             `json:"base_price"`
	DesignFee   float64             `json:"design_fee"`
	ImageURL    string              `json:"image_url,omitempty"`
	IsActive    bool                `json:"is_active"`
	Axes        []CustomizationAxis `json:"axes,omitempty"`
	Pricing     *SpecialPricing     `json:"pricing,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string              `json:"name" validate:"required,min=2,max=200"`
	Category    string              `json:"category,omitempty"`
	Description string              `json:"description,omitempty"`
	BasePrice   float64             `json:"base_price" validate:"gte=0"`
	DesignFee   float64             `json:"design_fee" validate:"gte=0"`
	ImageURL    string              `json:"image_url,omitempty" validate:"omitempty,url"`
	Axes        []CustomizationAxis `json:"axes,omitempty" validate:"dive"`
	Pricing     *SpecialPricing     `json:"pricing,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string              `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Category    *string              `json:"category,omitempty"`
	Description *string              `json:"description,omitempty"`
	BasePrice   *float64             `json:"base_price,omitempty" validate:"omitempty,gte=0"`
	DesignFee   *float64             `json:"design_fee,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string              `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool                `json:"is_active,omitempty"`
	Axes        *[]CustomizationAxis `json:"axes,omitempty"`
	Pricing     *SpecialPricing      `json:"pricing,omitempty"`
}

// ListProductsQuery filters the shopper-facing catalog. Search matches
// name and description, Category matches exactly.
type ListProductsQuery struct {
	Search     string
	Category   string
	ActiveOnly bool
	Page       int
	PageSize   int
}

// Axis returns the axis with the given type key, if present.
func (p *Product) Axis(axisType string) (*CustomizationAxis, bool) {
	for i := range p.Axes {
		if p.Axes[i].Type == axisType {
			return &p.Axes[i], true
		}
	}

	return nil, false
}

// Option returns the option with the given value, if present.
func (a *CustomizationAxis) Option(value string) (*CustomizationOption, bool) {
	for i := range a.Options {
		if a.Options[i].Value == value {
			return &a.Options[i], true
		}
	}

	return nil, false
}

// Tier looks up a named tier on a tiered-package pricing model.
func (sp *SpecialPricing) Tier(name string) (*PriceTier, bool) {
	for i := range sp.Tiers {
		if sp.Tiers[i].Name == name {
			return &sp.Tiers[i], true
		}
	}

	return nil, false
}

// Unit looks up a named unit on a per-unit-catalog pricing model.
func (sp *SpecialPricing) Unit(name string) (*UnitPrice, bool) {
	for i := range sp.Units {
		if sp.Units[i].Name == name {
			return &sp.Units[i], true
		}
	}

	return nil, false
}
