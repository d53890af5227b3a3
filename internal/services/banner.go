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

type BannerService interface {
	ListActiveBanners(ctx context.Context) ([]*models.Banner, error)
	ListBanners(ctx context.Context) ([]*models.Banner, error)
	CreateBanner(ctx context.Context, req *models.CreateBannerRequest) (*models.Banner, error)
	UpdateBanner(ctx context.Context, id uuid.UUID, req *models.UpdateBannerRequest) (*models.Banner, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error

	ListActiveFlashBanners(ctx context.Context) ([]*models.FlashBanner, error)
	ListFlashBanners(ctx context.Context) ([]*models.FlashBanner, error)
	CreateFlashBanner(ctx context.Context, req *models.CreateFlashBannerRequest) (*models.FlashBanner, error)
	UpdateFlashBanner(ctx context.Context, id uuid.UUID, req *models.UpdateFlashBannerRequest) (*models.FlashBanner, error)
	DeleteFlashBanner(ctx context.Context, id uuid.UUID) error
}

type bannerService struct {
	repo      repository.BannerRepository
	cache     cache.Cache
	cacheTTL  time.Duration
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

func NewBannerService(repo repository.BannerRepository, bannerCache cache.Cache, cacheTTL time.Duration, logger *slog.Logger) BannerService {
	return &bannerService{
		repo:      repo,
		cache:     bannerCache,
		cacheTTL:  cacheTTL,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger,
	}
}

// ListActiveBanners backs the storefront landing page, so the active set is
// cached with a short TTL on top of the invalidation below.
func (s *bannerService) ListActiveBanners(ctx context.Context) ([]*models.Banner, error) {
	var cached []*models.Banner

	hit, err := s.cache.Get(ctx, cache.ActiveBannersKey, &cached)
	if err != nil {
		s.logger.Warn("Banner cache read failed", slog.String("error", err.Error()))
	} else if hit {
		return cached, nil
	}

	banners, err := s.repo.ListActiveBanners(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch banners").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.ActiveBannersKey, banners, s.cacheTTL); err != nil {
		s.logger.Warn("Banner cache write failed", slog.String("error", err.Error()))
	}

	return banners, nil
}

func (s *bannerService) ListBanners(ctx context.Context) ([]*models.Banner, error) {
	banners, err := s.repo.ListBanners(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch banners").WithError(err)
	}

	return banners, nil
}

func (s *bannerService) CreateBanner(ctx context.Context, req *models.CreateBannerRequest) (*models.Banner, error) {
	banner := &models.Banner{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: s.sanitizer.Sanitize(req.Description),
		ImageURL:    req.ImageURL,
		LinkURL:     req.LinkURL,
		ButtonText:  req.ButtonText,
		Position:    req.Position,
		IsActive:    true,
	}

	if err := s.repo.CreateBanner(ctx, banner); err != nil {
		return nil, errors.DatabaseError("Failed to create banner").WithError(err)
	}

	s.invalidate(ctx, cache.ActiveBannersKey)

	return banner, nil
}

func (s *bannerService) UpdateBanner(ctx context.Context, id uuid.UUID, req *models.UpdateBannerRequest) (*models.Banner, error) {
	banner, err := s.repo.GetBannerByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Banner not found").WithError(err)
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}

	if req.Subtitle != nil {
		banner.Subtitle = *req.Subtitle
	}

	if req.Description != nil {
		banner.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if req.ImageURL != nil {
		banner.ImageURL = *req.ImageURL
	}

	if req.LinkURL != nil {
		banner.LinkURL = *req.LinkURL
	}

	if req.ButtonText != nil {
		banner.ButtonText = *req.ButtonText
	}

	if req.Position != nil {
		banner.Position = *req.Position
	}

	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateBanner(ctx, banner); err != nil {
		return nil, errors.DatabaseError("Failed to update banner").WithError(err)
	}

	s.invalidate(ctx, cache.ActiveBannersKey)

	return banner, nil
}

func (s *bannerService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteBanner(ctx, id); err != nil {
		return errors.NotFoundError("Banner not found").WithError(err)
	}

	s.invalidate(ctx, cache.ActiveBannersKey)

	return nil
}

func (s *bannerService) ListActiveFlashBanners(ctx context.Context) ([]*models.FlashBanner, error) {
	var cached []*models.FlashBanner

	hit, err := s.cache.Get(ctx, cache.ActiveFlashBannersKey, &cached)
	if err != nil {
		s.logger.Warn("Flash banner cache read failed", slog.String("error", err.Error()))
	} else if hit {
		return cached, nil
	}

	banners, err := s.repo.ListActiveFlashBanners(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch flash banners").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.ActiveFlashBannersKey, banners, s.cacheTTL); err != nil {
		s.logger.Warn("Flash banner cache write failed", slog.String("error", err.Error()))
	}

	return banners, nil
}

func (s *bannerService) ListFlashBanners(ctx context.Context) ([]*models.FlashBanner, error) {
	banners, err := s.repo.ListFlashBanners(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch flash banners").WithError(err)
	}

	return banners, nil
}

func (s *bannerService) CreateFlashBanner(ctx context.Context, req *models.CreateFlashBannerRequest) (*models.FlashBanner, error) {
	banner := &models.FlashBanner{
		Title:           req.Title,
		Description:     s.sanitizer.Sanitize(req.Description),
		LinkURL:         req.LinkURL,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		IsActive:        true,
	}

	if err := s.repo.CreateFlashBanner(ctx, banner); err != nil {
		return nil, errors.DatabaseError("Failed to create flash banner").WithError(err)
	}

	s.invalidate(ctx, cache.ActiveFlashBannersKey)

	return banner, nil
}

func (s *bannerService) UpdateFlashBanner(ctx context.Context, id uuid.UUID, req *models.UpdateFlashBannerRequest) (*models.FlashBanner, error) {
	banner, err := s.repo.GetFlashBannerByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Flash banner not found").WithError(err)
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}

	if req.Description != nil {
		banner.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if req.LinkURL != nil {
		banner.LinkURL = *req.LinkURL
	}

	if req.BackgroundColor != nil {
		banner.BackgroundColor = *req.BackgroundColor
	}

	if req.TextColor != nil {
		banner.TextColor = *req.TextColor
	}

	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateFlashBanner(ctx, banner); err != nil {
		return nil, errors.DatabaseError("Failed to update flash banner").WithError(err)
	}

	s.invalidate(ctx, cache.ActiveFlashBannersKey)

	return banner, nil
}

func (s *bannerService) DeleteFlashBanner(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteFlashBanner(ctx, id); err != nil {
		return errors.NotFoundError("Flash banner not found").WithError(err)
	}

	s.invalidate(ctx, cache.ActiveFlashBannersKey)

	return nil
}

func (s *bannerService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("Banner cache invalidation failed", slog.String("error", err.Error()))
	}
}
