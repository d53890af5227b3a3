package pricing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
)

// ToLineItem converts a finalized configuration and its computed price
// into a persistable cart line item. Product name and description are
// snapshotted at call time, never referenced live.
func ToLineItem(product *models.Product, cfg *Configuration, breakdown *PriceBreakdown) (*models.CartLineItem, error) {
	specs, err := selectedSpecs(product, cfg)
	if err != nil {
		return nil, err
	}

	line := &models.CartLineItem{
		ID:                 uuid.New(),
		ProductID:          product.ID,
		ProductName:        product.Name,
		ProductDescription: product.Description,
		Quantity:           cfg.Quantity(),
		UnitPrice:          breakdown.UnitPrice,
		FlatFees:           breakdown.FlatFees,
		TotalPrice:         breakdown.Total,
		SelectedSpecs:      specs,
		CreatedAt:          time.Now(),
	}

	if product.Pricing != nil {
		line.PricingModel = product.Pricing.Model
	}

	// Area and tiered pricing ignore the quantity multiplier; pin the
	// persisted quantity to one physical item so later quantity math
	// stays reproducible.
	if !line.QuantityScales() {
		line.Quantity = 1
	}

	dims := customDimensions(product, cfg)
	line.CustomDimensions = dims

	return line, nil
}

// selectedSpecs serializes the chosen configuration for re-display and
// reorder: one entry per axis in product order, then the special-model
// choice, delivery speed, and the design-assist flag.
func selectedSpecs(product *models.Product, cfg *Configuration) ([]string, error) {
	specs := make([]string, 0, len(product.Axes)+3)

	for _, axis := range product.Axes {
		value, ok := cfg.Selection(axis.Type)
		if !ok {
			if len(axis.Options) == 0 {
				return nil, errors.IncompleteConfigurationError(fmt.Sprintf("Axis '%s' has no selection and no default", axis.Type))
			}

			value = axis.Options[0].Value
		}

		option, ok := axis.Option(value)
		if !ok {
			return nil, errors.UnknownOptionError(axis.Type, value)
		}

		specs = append(specs, fmt.Sprintf("%s: %s", axis.Name, option.Label))
	}

	if product.Pricing != nil {
		switch product.Pricing.Model {
		case models.PricingTieredPackage:
			if cfg.Tier() != "" {
				specs = append(specs, fmt.Sprintf("Package: %s", cfg.Tier()))
			}
		case models.PricingPerUnitCatalog:
			if cfg.Unit() != "" {
				specs = append(specs, fmt.Sprintf("Size: %s", cfg.Unit()))
			}
		}
	}

	specs = append(specs, fmt.Sprintf("Delivery: %s", cfg.DeliverySpeed()))

	if cfg.NeedsDesignAssist() {
		specs = append(specs, "Design assistance requested")
	}

	return specs, nil
}

func customDimensions(product *models.Product, cfg *Configuration) *models.CustomDimensions {
	var dims *models.CustomDimensions

	if product.Pricing != nil && product.Pricing.Model == models.PricingAreaBased {
		width, height := cfg.Dimensions()
		dims = &models.CustomDimensions{Width: width, Height: height}
	}

	if ref := cfg.ArtworkRef(); ref != "" {
		if dims == nil {
			dims = &models.CustomDimensions{}
		}

		dims.ArtworkURL = ref
	}

	return dims
}
