// Package pricing implements the product customization engine: the mutable
// per-session Configuration, the pure price computation, and the assembler
// that turns a finished configuration into a cart line item.
package pricing

import (
	"fmt"

	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
)

// DefaultQuantity is the print-run count a generic configuration starts
// with. Per-unit products count individual pieces and start at 1.
const DefaultQuantity = 100

// Configuration holds a shopper's in-progress selections for one product.
// Setters validate their own constraint and never partially apply: a
// rejected mutation leaves the previous state intact. The zero value is not
// usable; construct with NewConfiguration.
type Configuration struct {
	product *models.Product

	quantity          int
	selections        map[string]string
	deliverySpeed     models.DeliverySpeed
	needsDesignAssist bool
	width             float64
	height            float64
	tier              string
	unit              string
	artworkRef        string
}

// NewConfiguration creates the default configuration for a product: the
// first option of every axis, standard delivery, and the model-appropriate
// starting quantity.
func NewConfiguration(product *models.Product) *Configuration {
	c := &Configuration{
		product:       product,
		quantity:      DefaultQuantity,
		selections:    make(map[string]string, len(product.Axes)),
		deliverySpeed: models.DeliveryStandard,
	}

	if product.Pricing != nil && product.Pricing.Model == models.PricingPerUnitCatalog {
		c.quantity = 1
	}

	for _, axis := range product.Axes {
		if len(axis.Options) > 0 {
			c.selections[axis.Type] = axis.Options[0].Value
		}
	}

	return c
}

func (c *Configuration) Product() *models.Product { return c.product }

func (c *Configuration) Quantity() int { return c.quantity }

func (c *Configuration) DeliverySpeed() models.DeliverySpeed { return c.deliverySpeed }

func (c *Configuration) NeedsDesignAssist() bool { return c.needsDesignAssist }

func (c *Configuration) Dimensions() (width, height float64) { return c.width, c.height }

func (c *Configuration) Tier() string { return c.tier }

func (c *Configuration) Unit() string { return c.unit }

func (c *Configuration) ArtworkRef() string { return c.artworkRef }

// Selections returns a copy of the axis selections.
func (c *Configuration) Selections() map[string]string {
	out := make(map[string]string, len(c.selections))
	for k, v := range c.selections {
		out[k] = v
	}

	return out
}

// Selection returns the chosen option value for an axis type.
func (c *Configuration) Selection(axisType string) (string, bool) {
	v, ok := c.selections[axisType]

	return v, ok
}

// SetQuantity updates the quantity. Zero and negative values are rejected,
// never silently accepted.
func (c *Configuration) SetQuantity(quantity int) error {
	if quantity < 1 {
		return errors.InvalidQuantityError(fmt.Sprintf("Quantity must be a positive integer, got %d", quantity))
	}

	c.quantity = quantity

	return nil
}

// SelectOption chooses an option on an axis. The axis and value must both
// exist on the product definition.
func (c *Configuration) SelectOption(axisType, value string) error {
	axis, ok := c.product.Axis(axisType)
	if !ok {
		return errors.UnknownAxisError(axisType)
	}

	if _, ok := axis.Option(value); !ok {
		return errors.UnknownOptionError(axisType, value)
	}

	c.selections[axisType] = value

	return nil
}

func (c *Configuration) SetDeliverySpeed(speed models.DeliverySpeed) error {
	if !speed.Valid() {
		return errors.ValidationError(fmt.Sprintf("Unknown delivery speed '%s'", speed))
	}

	c.deliverySpeed = speed

	return nil
}

func (c *Configuration) ToggleDesignAssist() {
	c.needsDesignAssist = !c.needsDesignAssist
}

func (c *Configuration) SetDesignAssist(needed bool) {
	c.needsDesignAssist = needed
}

// SetDimensions records the physical dimensions for area-priced products.
// Both must be strictly positive.
func (c *Configuration) SetDimensions(width, height float64) error {
	if width <= 0 || height <= 0 {
		return errors.InvalidDimensionsError("Width and height must both be greater than zero")
	}

	c.width = width
	c.height = height

	return nil
}

// SelectTier chooses a named tier on a tiered-package product.
func (c *Configuration) SelectTier(name string) error {
	sp := c.product.Pricing
	if sp == nil || sp.Model != models.PricingTieredPackage {
		return errors.BadRequestError("Product has no package tiers")
	}

	if _, ok := sp.Tier(name); !ok {
		return errors.MissingTierSelectionError(fmt.Sprintf("Unknown tier '%s'", name))
	}

	c.tier = name

	return nil
}

// SelectUnit chooses a named unit/size on a per-unit-catalog product.
func (c *Configuration) SelectUnit(name string) error {
	sp := c.product.Pricing
	if sp == nil || sp.Model != models.PricingPerUnitCatalog {
		return errors.BadRequestError("Product has no unit catalog")
	}

	if _, ok := sp.Unit(name); !ok {
		return errors.IncompleteConfigurationError(fmt.Sprintf("Unknown unit '%s'", name))
	}

	c.unit = name

	return nil
}

// AttachArtwork records the public reference of an uploaded artwork file.
// The upload itself happens out of band.
func (c *Configuration) AttachArtwork(ref string) {
	c.artworkRef = ref
}

// ApplyRequest replays a finished client-side configuration onto c. The
// first failing mutation aborts and is returned; earlier mutations stay
// applied, matching the interactive flow where each change is validated as
// it happens.
func (c *Configuration) ApplyRequest(req *models.AddLineRequest) error {
	for axisType, value := range req.Selections {
		if err := c.SelectOption(axisType, value); err != nil {
			return err
		}
	}

	if req.Quantity != nil {
		if err := c.SetQuantity(*req.Quantity); err != nil {
			return err
		}
	}

	if req.DeliverySpeed != "" {
		if err := c.SetDeliverySpeed(req.DeliverySpeed); err != nil {
			return err
		}
	}

	c.SetDesignAssist(req.NeedsDesignAssist)

	if req.Width != 0 || req.Height != 0 {
		if err := c.SetDimensions(req.Width, req.Height); err != nil {
			return err
		}
	}

	if req.Tier != "" {
		if err := c.SelectTier(req.Tier); err != nil {
			return err
		}
	}

	if req.Unit != "" {
		if err := c.SelectUnit(req.Unit); err != nil {
			return err
		}
	}

	if req.ArtworkURL != "" {
		c.AttachArtwork(req.ArtworkURL)
	}

	return nil
}
