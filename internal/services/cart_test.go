package service_test

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appErrors "github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
	"github.com/printhaus/storefront-platform/internal/repositories/mocks"
	service "github.com/printhaus/storefront-platform/internal/services"
)

func sessionOwner(id string) models.CartOwner {
	return models.CartOwner{SessionID: &id}
}

func cardProduct() *models.Product {
	return &models.Product{
		ID:          uuid.New(),
		Name:        "Business Cards",
		Description: "Premium quality",
		BasePrice:   140,
		DesignFee:   5000,
		IsActive:    true,
		Axes: []models.CustomizationAxis{
			{
				Type: "paper_weight",
				Name: "Paper Weight",
				Options: []models.CustomizationOption{
					{Value: "standard", Label: "Standard", PriceDelta: 0},
					{Value: "600g", Label: "600gsm", PriceDelta: 30},
				},
			},
		},
	}
}

func TestGetCart(t *testing.T) {
	mockCarts := new(mocks.CartRepository)
	mockProducts := new(mocks.ProductRepository)
	cartService := service.NewCartService(mockCarts, mockProducts)
	ctx := t.Context()
	owner := sessionOwner("sess-1")

	t.Run("Failure - No owner", func(t *testing.T) {
		// Act
		view, err := cartService.GetCart(ctx, models.CartOwner{})

		// Assert
		assert.Nil(t, view)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBadRequest))
	})

	t.Run("Success - No cart yet returns empty view", func(t *testing.T) {
		// Arrange
		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(nil, sql.ErrNoRows).Once()

		// Act
		view, err := cartService.GetCart(ctx, owner)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.CartTotal)
		assert.Zero(t, view.ItemCount)
		mockCarts.AssertNotCalled(t, "CreateCart")
		mockCarts.AssertExpectations(t)
	})

	t.Run("Success - Derived totals", func(t *testing.T) {
		// Arrange
		cart := &models.Cart{
			ID:        uuid.New(),
			SessionID: owner.SessionID,
			Items: []models.CartLineItem{
				{ID: uuid.New(), Quantity: 100, UnitPrice: 170, TotalPrice: 17000},
				{ID: uuid.New(), Quantity: 1, UnitPrice: 15000, TotalPrice: 15000, PricingModel: models.PricingAreaBased},
			},
		}
		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(cart, nil).Once()

		// Act
		view, err := cartService.GetCart(ctx, owner)

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 32000, view.CartTotal, 0)
		assert.Equal(t, 101, view.ItemCount)
		mockCarts.AssertExpectations(t)
	})
}

func TestAddLine(t *testing.T) {
	ctx := t.Context()
	owner := sessionOwner("sess-2")

	t.Run("Success - First write creates the cart", func(t *testing.T) {
		// Arrange
		mockCarts := new(mocks.CartRepository)
		mockProducts := new(mocks.ProductRepository)
		cartService := service.NewCartService(mockCarts, mockProducts)

		product := cardProduct()
		cartID := uuid.New()

		mockProducts.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(nil, sql.ErrNoRows).Once()
		mockCarts.On("CreateCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return c.SessionID != nil && *c.SessionID == "sess-2"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Cart).ID = cartID
		}).Return(nil).Once()

		var inserted *models.CartLineItem

		mockCarts.On("InsertLine", mock.Anything, mock.AnythingOfType("*models.CartLineItem")).
			Run(func(args mock.Arguments) {
				inserted = args.Get(1).(*models.CartLineItem)
			}).Return(nil).Once()

		reloaded := &models.Cart{ID: cartID, SessionID: owner.SessionID}
		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(reloaded, nil).Once()

		req := &models.AddLineRequest{
			ProductID:  product.ID,
			Selections: map[string]string{"paper_weight": "600g"},
		}

		// Act
		view, err := cartService.AddLine(ctx, owner, req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, view)
		require.NotNil(t, inserted)
		assert.Equal(t, cartID, inserted.CartID)
		assert.NotEqual(t, uuid.Nil, inserted.ID)
		assert.Equal(t, 100, inserted.Quantity)
		assert.InDelta(t, 170, inserted.UnitPrice, 0)
		assert.InDelta(t, 17000, inserted.TotalPrice, 0)
		assert.Equal(t, "Business Cards", inserted.ProductName)
		mockCarts.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Failure - Inactive product", func(t *testing.T) {
		// Arrange
		mockCarts := new(mocks.CartRepository)
		mockProducts := new(mocks.ProductRepository)
		cartService := service.NewCartService(mockCarts, mockProducts)

		product := cardProduct()
		product.IsActive = false
		mockProducts.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()

		// Act
		view, err := cartService.AddLine(ctx, owner, &models.AddLineRequest{ProductID: product.ID})

		// Assert
		assert.Nil(t, view)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBadRequest))
		mockCarts.AssertNotCalled(t, "InsertLine")
	})

	t.Run("Failure - Unknown option rejects before any write", func(t *testing.T) {
		// Arrange
		mockCarts := new(mocks.CartRepository)
		mockProducts := new(mocks.ProductRepository)
		cartService := service.NewCartService(mockCarts, mockProducts)

		product := cardProduct()
		mockProducts.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()

		req := &models.AddLineRequest{
			ProductID:  product.ID,
			Selections: map[string]string{"paper_weight": "parchment"},
		}

		// Act
		view, err := cartService.AddLine(ctx, owner, req)

		// Assert
		assert.Nil(t, view)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeUnknownOption))
		mockCarts.AssertNotCalled(t, "CreateCart")
		mockCarts.AssertNotCalled(t, "InsertLine")
	})

	t.Run("Failure - Product not found", func(t *testing.T) {
		// Arrange
		mockCarts := new(mocks.CartRepository)
		mockProducts := new(mocks.ProductRepository)
		cartService := service.NewCartService(mockCarts, mockProducts)

		productID := uuid.New()
		mockProducts.On("GetProductByID", mock.Anything, productID).Return(nil, sql.ErrNoRows).Once()

		// Act
		view, err := cartService.AddLine(ctx, owner, &models.AddLineRequest{ProductID: productID})

		// Assert
		assert.Nil(t, view)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})
}

func TestUpdateLineQuantity(t *testing.T) {
	ctx := t.Context()
	owner := sessionOwner("sess-3")

	t.Run("Success - Flat fees do not scale", func(t *testing.T) {
		// Arrange
		mockCarts := new(mocks.CartRepository)
		cartService := service.NewCartService(mockCarts, new(mocks.ProductRepository))

		lineID := uuid.New()
		cart := &models.Cart{
			ID:        uuid.New(),
			SessionID: owner.SessionID,
			Items: []models.CartLineItem{
				{ID: lineID, Quantity: 100, UnitPrice: 170, FlatFees: 4000, TotalPrice: 21000},
			},
		}

		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(cart, nil).Twice()
		mockCarts.On("UpdateLineQuantity", mock.Anything, lineID, 250, 46500.0).Return(nil).Once()

		// Act
		view, err := cartService.UpdateLineQuantity(ctx, owner, lineID, &models.UpdateLineQuantityRequest{Quantity: 250})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, view)
		mockCarts.AssertExpectations(t)
	})

	t.Run("Failure - Quantity pinned for area-priced line", func(t *testing.T) {
		// Arrange
		mockCarts := new(mocks.CartRepository)
		cartService := service.NewCartService(mockCarts, new(mocks.ProductRepository))

		lineID := uuid.New()
		cart := &models.Cart{
			ID:        uuid.New(),
			SessionID: owner.SessionID,
			Items: []models.CartLineItem{
				{ID: lineID, Quantity: 1, UnitPrice: 15000, TotalPrice: 15000, PricingModel: models.PricingAreaBased},
			},
		}

		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(cart, nil).Once()

		// Act
		view, err := cartService.UpdateLineQuantity(ctx, owner, lineID, &models.UpdateLineQuantityRequest{Quantity: 3})

		// Assert
		assert.Nil(t, view)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBadRequest))
		mockCarts.AssertNotCalled(t, "UpdateLineQuantity")
	})

	t.Run("Failure - Line not in owner's cart", func(t *testing.T) {
		// Arrange
		mockCarts := new(mocks.CartRepository)
		cartService := service.NewCartService(mockCarts, new(mocks.ProductRepository))

		cart := &models.Cart{ID: uuid.New(), SessionID: owner.SessionID}
		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(cart, nil).Once()

		// Act
		view, err := cartService.UpdateLineQuantity(ctx, owner, uuid.New(), &models.UpdateLineQuantityRequest{Quantity: 2})

		// Assert
		assert.Nil(t, view)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
		mockCarts.AssertNotCalled(t, "UpdateLineQuantity")
	})
}

func TestRemoveLine(t *testing.T) {
	ctx := t.Context()
	owner := sessionOwner("sess-4")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCarts := new(mocks.CartRepository)
		cartService := service.NewCartService(mockCarts, new(mocks.ProductRepository))

		lineID := uuid.New()
		cart := &models.Cart{
			ID:        uuid.New(),
			SessionID: owner.SessionID,
			Items:     []models.CartLineItem{{ID: lineID, Quantity: 1, TotalPrice: 15000}},
		}
		emptied := &models.Cart{ID: cart.ID, SessionID: owner.SessionID}

		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(cart, nil).Once()
		mockCarts.On("DeleteLine", mock.Anything, lineID).Return(nil).Once()
		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(emptied, nil).Once()

		// Act
		view, err := cartService.RemoveLine(ctx, owner, lineID)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.CartTotal)
		mockCarts.AssertExpectations(t)
	})
}

func TestClearCart(t *testing.T) {
	ctx := t.Context()
	owner := sessionOwner("sess-5")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCarts := new(mocks.CartRepository)
		cartService := service.NewCartService(mockCarts, new(mocks.ProductRepository))

		cart := &models.Cart{
			ID:        uuid.New(),
			SessionID: owner.SessionID,
			Items:     []models.CartLineItem{{ID: uuid.New(), Quantity: 2, TotalPrice: 300}},
		}
		emptied := &models.Cart{ID: cart.ID, SessionID: owner.SessionID}

		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(cart, nil).Once()
		mockCarts.On("ClearCart", mock.Anything, cart.ID).Return(nil).Once()
		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(emptied, nil).Once()

		// Act
		view, err := cartService.ClearCart(ctx, owner)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		mockCarts.AssertExpectations(t)
	})

	t.Run("Success - Nothing to clear", func(t *testing.T) {
		// Arrange
		mockCarts := new(mocks.CartRepository)
		cartService := service.NewCartService(mockCarts, new(mocks.ProductRepository))

		mockCarts.On("GetCartByOwner", mock.Anything, owner).Return(nil, sql.ErrNoRows).Once()

		// Act
		view, err := cartService.ClearCart(ctx, owner)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		mockCarts.AssertNotCalled(t, "ClearCart")
	})
}
