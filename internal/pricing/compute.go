package pricing

import (
	"fmt"

	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
)

// WarningNegativePriceClamped is raised when a combination of negative
// option deltas would drive the unit price below zero. Non-fatal: the unit
// price is clamped to zero and the computation proceeds.
const WarningNegativePriceClamped = "NEGATIVE_PRICE_CLAMPED"

// PriceBreakdown is the result of pricing one configuration. UnitPrice is
// the price for one unit under the chosen configuration; FlatFees are
// one-time charges (design assist, delivery) added exactly once.
type PriceBreakdown struct {
	UnitPrice float64  `json:"unit_price"`
	FlatFees  float64  `json:"flat_fees"`
	Total     float64  `json:"total"`
	Warnings  []string `json:"warnings,omitempty"`
}

// ComputePrice maps a product definition and a configuration to a price
// breakdown. It is a pure function of its inputs: recomputation on every
// configuration change is idempotent and side-effect-free.
//
// Special pricing models replace the generic per-unit computation for the
// base line; flat fees apply on top in every model.
func ComputePrice(product *models.Product, cfg *Configuration) (*PriceBreakdown, error) {
	breakdown := &PriceBreakdown{
		FlatFees: flatFees(product, cfg),
	}

	model := models.PricingModel("")
	if product.Pricing != nil {
		model = product.Pricing.Model
	}

	switch model {
	case models.PricingAreaBased:
		width, height := cfg.Dimensions()
		if width <= 0 || height <= 0 {
			return nil, errors.InvalidDimensionsError("Area pricing requires width and height greater than zero")
		}

		// Area pricing is already the total for one physical item, so the
		// quantity multiplier does not apply.
		breakdown.UnitPrice = width * height * product.Pricing.RatePerUnitArea
		breakdown.Total = breakdown.UnitPrice + breakdown.FlatFees

	case models.PricingTieredPackage:
		if cfg.Tier() == "" {
			return nil, errors.MissingTierSelectionError("No package tier selected")
		}

		tier, ok := product.Pricing.Tier(cfg.Tier())
		if !ok {
			return nil, errors.MissingTierSelectionError(fmt.Sprintf("Unknown tier '%s'", cfg.Tier()))
		}

		breakdown.UnitPrice = tier.Price
		breakdown.Total = breakdown.UnitPrice + breakdown.FlatFees

	case models.PricingPerUnitCatalog:
		if cfg.Unit() == "" {
			return nil, errors.IncompleteConfigurationError("No unit size selected")
		}

		unit, ok := product.Pricing.Unit(cfg.Unit())
		if !ok {
			return nil, errors.IncompleteConfigurationError(fmt.Sprintf("Unknown unit '%s'", cfg.Unit()))
		}

		if cfg.Quantity() < 1 {
			return nil, errors.InvalidQuantityError("Piece count must be at least 1")
		}

		breakdown.UnitPrice = unit.Price
		breakdown.Total = breakdown.UnitPrice*float64(cfg.Quantity()) + breakdown.FlatFees

	default:
		if cfg.Quantity() < 1 {
			return nil, errors.InvalidQuantityError("Quantity must be at least 1")
		}

		unitPrice := product.BasePrice
		for _, axis := range product.Axes {
			value, ok := cfg.Selection(axis.Type)
			if !ok {
				if len(axis.Options) == 0 {
					return nil, errors.IncompleteConfigurationError(fmt.Sprintf("Axis '%s' has no selectable options", axis.Type))
				}

				value = axis.Options[0].Value
			}

			if option, ok := axis.Option(value); ok {
				unitPrice += option.PriceDelta
			}
		}

		if unitPrice < 0 {
			unitPrice = 0
			breakdown.Warnings = append(breakdown.Warnings, WarningNegativePriceClamped)
		}

		breakdown.UnitPrice = unitPrice
		breakdown.Total = unitPrice*float64(cfg.Quantity()) + breakdown.FlatFees
	}

	return breakdown, nil
}

func flatFees(product *models.Product, cfg *Configuration) float64 {
	fees := cfg.DeliverySpeed().Fee()
	if cfg.NeedsDesignAssist() {
		fees += product.DesignFee
	}

	return fees
}
