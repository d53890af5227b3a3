package service_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/printhaus/storefront-platform/internal/cache"
	cacheMocks "github.com/printhaus/storefront-platform/internal/cache/mocks"
	appErrors "github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
	"github.com/printhaus/storefront-platform/internal/repositories/mocks"
	service "github.com/printhaus/storefront-platform/internal/services"
)

const productTTL = 10 * time.Minute

func newProductService(repo *mocks.ProductRepository, productCache *cacheMocks.Cache) service.ProductService {
	return service.NewProductService(repo, productCache, productTTL, slog.Default())
}

func TestCreateProduct(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Description is sanitized", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := newProductService(mockRepo, mockCache)

		req := &models.CreateProductRequest{
			Name:        "Business Cards",
			Description: `Premium <script>alert("x")</script><b>quality</b>`,
			BasePrice:   140,
			DesignFee:   5000,
		}

		mockRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Name == req.Name && p.IsActive
		})).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.NotContains(t, product.Description, "<script>")
		assert.Contains(t, product.Description, "<b>quality</b>")
		assert.True(t, product.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := newProductService(mockRepo, new(cacheMocks.Cache))

		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(assert.AnError).Once()

		// Act
		product, err := productService.CreateProduct(ctx, &models.CreateProductRequest{Name: "Broken"})

		// Assert
		assert.Nil(t, product)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := t.Context()
	productID := uuid.New()
	key := cache.Key(cache.ProductKeyPrefix, productID.String())

	t.Run("Success - Cache miss falls through and fills", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := newProductService(mockRepo, mockCache)

		product := &models.Product{ID: productID, Name: "Banner"}
		mockCache.On("Get", mock.Anything, key, mock.Anything).Return(false, nil).Once()
		mockRepo.On("GetProductByID", mock.Anything, productID).Return(product, nil).Once()
		mockCache.On("Set", mock.Anything, key, product, productTTL).Return(nil).Once()

		// Act
		got, err := productService.GetProductByID(ctx, productID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, product, got)
		mockCache.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Cache hit skips the repository", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := newProductService(mockRepo, mockCache)

		mockCache.On("Get", mock.Anything, key, mock.Anything).Run(func(args mock.Arguments) {
			cached := args.Get(2).(*models.Product)
			cached.ID = productID
			cached.Name = "Cached Banner"
		}).Return(true, nil).Once()

		// Act
		got, err := productService.GetProductByID(ctx, productID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Cached Banner", got.Name)
		mockRepo.AssertNotCalled(t, "GetProductByID")
	})

	t.Run("Success - Cache error degrades to the repository", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := newProductService(mockRepo, mockCache)

		product := &models.Product{ID: productID, Name: "Banner"}
		mockCache.On("Get", mock.Anything, key, mock.Anything).Return(false, assert.AnError).Once()
		mockRepo.On("GetProductByID", mock.Anything, productID).Return(product, nil).Once()
		mockCache.On("Set", mock.Anything, key, product, productTTL).Return(nil).Once()

		// Act
		got, err := productService.GetProductByID(ctx, productID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := newProductService(mockRepo, mockCache)

		mockCache.On("Get", mock.Anything, key, mock.Anything).Return(false, nil).Once()
		mockRepo.On("GetProductByID", mock.Anything, productID).Return(nil, assert.AnError).Once()

		// Act
		got, err := productService.GetProductByID(ctx, productID)

		// Assert
		assert.Nil(t, got)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := t.Context()
	productID := uuid.New()

	t.Run("Success - Partial update invalidates the cache", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := newProductService(mockRepo, mockCache)

		existing := &models.Product{ID: productID, Name: "Old Name", BasePrice: 140, IsActive: true}
		newName := "New Name"
		inactive := false

		mockRepo.On("GetProductByID", mock.Anything, productID).Return(existing, nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Name == newName && !p.IsActive && p.BasePrice == 140
		})).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, cache.Key(cache.ProductKeyPrefix, productID.String())).Return(nil).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, productID, &models.UpdateProductRequest{Name: &newName, IsActive: &inactive})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, newName, product.Name)
		assert.False(t, product.IsActive)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - Product not found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := newProductService(mockRepo, new(cacheMocks.Cache))

		mockRepo.On("GetProductByID", mock.Anything, productID).Return(nil, assert.AnError).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, productID, &models.UpdateProductRequest{})

		// Assert
		assert.Nil(t, product)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
		mockRepo.AssertNotCalled(t, "UpdateProduct")
	})
}

func TestListProducts(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := newProductService(mockRepo, new(cacheMocks.Cache))

		query := &models.ListProductsQuery{Search: "card", ActiveOnly: true, Page: 1, PageSize: 10}
		expected := []*models.Product{{ID: uuid.New(), Name: "Business Cards"}}
		mockRepo.On("ListProducts", mock.Anything, query).Return(expected, 1, nil).Once()

		// Act
		products, total, err := productService.ListProducts(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, products)
		assert.Equal(t, 1, total)
	})
}
