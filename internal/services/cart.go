package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
	"github.com/printhaus/storefront-platform/internal/pricing"
	repository "github.com/printhaus/storefront-platform/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, owner models.CartOwner) (*models.CartView, error)
	AddLine(ctx context.Context, owner models.CartOwner, req *models.AddLineRequest) (*models.CartView, error)
	UpdateLineQuantity(ctx context.Context, owner models.CartOwner, lineID uuid.UUID, req *models.UpdateLineQuantityRequest) (*models.CartView, error)
	RemoveLine(ctx context.Context, owner models.CartOwner, lineID uuid.UUID) (*models.CartView, error)
	ClearCart(ctx context.Context, owner models.CartOwner) (*models.CartView, error)
}

type cartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) CartService {
	return &cartService{carts: carts, products: products}
}

// GetCart never creates a cart. Shoppers without one get an empty view; a
// cart row appears only on the first write.
func (s *cartService) GetCart(ctx context.Context, owner models.CartOwner) (*models.CartView, error) {
	if owner.IsZero() {
		return nil, errors.BadRequestError("A user or session is required")
	}

	cart, err := s.carts.GetCartByOwner(ctx, owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return emptyCartView(owner), nil
		}

		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	return models.NewCartView(cart), nil
}

// AddLine prices the submitted configuration server-side and stores the
// resulting snapshot. Client-supplied prices are never trusted.
func (s *cartService) AddLine(ctx context.Context, owner models.CartOwner, req *models.AddLineRequest) (*models.CartView, error) {
	if owner.IsZero() {
		return nil, errors.BadRequestError("A user or session is required")
	}

	product, err := s.products.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if !product.IsActive {
		return nil, errors.BadRequestError("Product is not available")
	}

	cfg := pricing.NewConfiguration(product)
	if err := cfg.ApplyRequest(req); err != nil {
		return nil, err
	}

	breakdown, err := pricing.ComputePrice(product, cfg)
	if err != nil {
		return nil, err
	}

	line, err := pricing.ToLineItem(product, cfg, breakdown)
	if err != nil {
		return nil, err
	}

	cart, err := s.getOrCreateCart(ctx, owner)
	if err != nil {
		return nil, err
	}

	line.ID = uuid.New()
	line.CartID = cart.ID

	if err := s.carts.InsertLine(ctx, line); err != nil {
		return nil, errors.DatabaseError("Failed to add cart line").WithError(err)
	}

	return s.reload(ctx, owner)
}

func (s *cartService) UpdateLineQuantity(ctx context.Context, owner models.CartOwner, lineID uuid.UUID, req *models.UpdateLineQuantityRequest) (*models.CartView, error) {
	_, line, err := s.findLine(ctx, owner, lineID)
	if err != nil {
		return nil, err
	}

	if !line.QuantityScales() {
		return nil, errors.BadRequestError("Quantity is fixed for this configuration")
	}

	// Flat fees are one-time charges; only the per-unit part scales.
	total := line.UnitPrice*float64(req.Quantity) + line.FlatFees

	if err := s.carts.UpdateLineQuantity(ctx, lineID, req.Quantity, total); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundError("Cart item not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update cart line").WithError(err)
	}

	return s.reload(ctx, owner)
}

func (s *cartService) RemoveLine(ctx context.Context, owner models.CartOwner, lineID uuid.UUID) (*models.CartView, error) {
	if _, _, err := s.findLine(ctx, owner, lineID); err != nil {
		return nil, err
	}

	if err := s.carts.DeleteLine(ctx, lineID); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundError("Cart item not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to remove cart line").WithError(err)
	}

	return s.reload(ctx, owner)
}

func (s *cartService) ClearCart(ctx context.Context, owner models.CartOwner) (*models.CartView, error) {
	if owner.IsZero() {
		return nil, errors.BadRequestError("A user or session is required")
	}

	cart, err := s.carts.GetCartByOwner(ctx, owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return emptyCartView(owner), nil
		}

		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if err := s.carts.ClearCart(ctx, cart.ID); err != nil {
		return nil, errors.DatabaseError("Failed to clear cart").WithError(err)
	}

	return s.reload(ctx, owner)
}

func (s *cartService) getOrCreateCart(ctx context.Context, owner models.CartOwner) (*models.Cart, error) {
	cart, err := s.carts.GetCartByOwner(ctx, owner)
	if err == nil {
		return cart, nil
	}

	if err != sql.ErrNoRows {
		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	cart = &models.Cart{UserID: owner.UserID, SessionID: owner.SessionID}
	if err := s.carts.CreateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

// findLine resolves the owner's cart and checks the line belongs to it, so
// one shopper can never touch another's lines by guessing ids.
func (s *cartService) findLine(ctx context.Context, owner models.CartOwner, lineID uuid.UUID) (*models.Cart, *models.CartLineItem, error) {
	if owner.IsZero() {
		return nil, nil, errors.BadRequestError("A user or session is required")
	}

	cart, err := s.carts.GetCartByOwner(ctx, owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, errors.NotFoundError("Cart not found").WithError(err)
		}

		return nil, nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	for i := range cart.Items {
		if cart.Items[i].ID == lineID {
			return cart, &cart.Items[i], nil
		}
	}

	return nil, nil, errors.NotFoundError("Cart item not found")
}

// reload re-reads the cart after a mutation so the response always reflects
// persisted state, never an in-memory projection.
func (s *cartService) reload(ctx context.Context, owner models.CartOwner) (*models.CartView, error) {
	cart, err := s.carts.GetCartByOwner(ctx, owner)
	if err != nil {
		return nil, errors.DatabaseError("Failed to reload cart").WithError(err)
	}

	return models.NewCartView(cart), nil
}

func emptyCartView(owner models.CartOwner) *models.CartView {
	return models.NewCartView(&models.Cart{
		UserID:    owner.UserID,
		SessionID: owner.SessionID,
		Items:     []models.CartLineItem{},
	})
}
