package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/printhaus/storefront-platform/internal/cache"
	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
	repository "github.com/printhaus/storefront-platform/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, query *models.ListProductsQuery) ([]*models.Product, int, error)
}

type productService struct {
	repo      repository.ProductRepository
	cache     cache.Cache
	cacheTTL  time.Duration
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

func NewProductService(repo repository.ProductRepository, productCache cache.Cache, cacheTTL time.Duration, logger *slog.Logger) ProductService {
	return &productService{
		repo:      repo,
		cache:     productCache,
		cacheTTL:  cacheTTL,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Description: s.sanitizer.Sanitize(req.Description),
		BasePrice:   req.BasePrice,
		DesignFee:   req.DesignFee,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		Axes:        req.Axes,
		Pricing:     req.Pricing,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	key := cache.Key(cache.ProductKeyPrefix, id.String())

	var cached models.Product

	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("Product cache read failed", slog.String("error", err.Error()))
	} else if hit {
		return &cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if err := s.cache.Set(ctx, key, product, s.cacheTTL); err != nil {
		s.logger.Warn("Product cache write failed", slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Category != nil {
		product.Category = *req.Category
	}

	if req.Description != nil {
		product.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if req.BasePrice != nil {
		product.BasePrice = *req.BasePrice
	}

	if req.DesignFee != nil {
		product.DesignFee = *req.DesignFee
	}

	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if req.Axes != nil {
		product.Axes = *req.Axes
	}

	if req.Pricing != nil {
		product.Pricing = req.Pricing
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return errors.NotFoundError("Product not found").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) ListProducts(ctx context.Context, query *models.ListProductsQuery) ([]*models.Product, int, error) {
	products, total, err := s.repo.ListProducts(ctx, query)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, id.String())); err != nil {
		s.logger.Warn("Product cache invalidation failed", slog.String("error", err.Error()))
	}
}
