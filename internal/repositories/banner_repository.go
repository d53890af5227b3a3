package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/printhaus/storefront-platform/internal/models"
	"github.com/printhaus/storefront-platform/internal/utils"
)

type BannerRepository interface {
	CreateBanner(ctx context.Context, banner *models.Banner) error
	UpdateBanner(ctx context.Context, banner *models.Banner) error
	DeleteBanner(ctx context.Context, id uuid.UUID) error
	GetBannerByID(ctx context.Context, id uuid.UUID) (*models.Banner, error)
	ListActiveBanners(ctx context.Context) ([]*models.Banner, error)
	ListBanners(ctx context.Context) ([]*models.Banner, error)

	CreateFlashBanner(ctx context.Context, banner *models.FlashBanner) error
	UpdateFlashBanner(ctx context.Context, banner *models.FlashBanner) error
	DeleteFlashBanner(ctx context.Context, id uuid.UUID) error
	GetFlashBannerByID(ctx context.Context, id uuid.UUID) (*models.FlashBanner, error)
	ListActiveFlashBanners(ctx context.Context) ([]*models.FlashBanner, error)
	ListFlashBanners(ctx context.Context) ([]*models.FlashBanner, error)
}

type bannerRepository struct {
	DB *sql.DB
}

func NewBannerRepo(db *sql.DB) BannerRepository {
	return &bannerRepository{DB: db}
}

const bannerColumns = `id, title, subtitle, description, image_url, link_url, button_text, position, is_active, created_at, updated_at`

func (r *bannerRepository) CreateBanner(ctx context.Context, banner *models.Banner) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO banners (title, subtitle, description, image_url, link_url, button_text, position, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		banner.Title, banner.Subtitle, banner.Description, banner.ImageURL,
		banner.LinkURL, banner.ButtonText, banner.Position, banner.IsActive,
	).Scan(&banner.ID, &banner.CreatedAt, &banner.UpdatedAt)
}

func (r *bannerRepository) UpdateBanner(ctx context.Context, banner *models.Banner) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE banners
		SET title = $1, subtitle = $2, description = $3, image_url = $4, link_url = $5,
		    button_text = $6, position = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		banner.Title, banner.Subtitle, banner.Description, banner.ImageURL, banner.LinkURL,
		banner.ButtonText, banner.Position, banner.IsActive, banner.ID,
	).Scan(&banner.UpdatedAt)
}

func (r *bannerRepository) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *bannerRepository) GetBannerByID(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	row := r.DB.QueryRowContext(dbCtx, `SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id)

	return scanBanner(row)
}

func (r *bannerRepository) ListActiveBanners(ctx context.Context) ([]*models.Banner, error) {
	return r.listBanners(ctx, `SELECT `+bannerColumns+` FROM banners WHERE is_active = TRUE ORDER BY position, created_at`)
}

func (r *bannerRepository) ListBanners(ctx context.Context) ([]*models.Banner, error) {
	return r.listBanners(ctx, `SELECT `+bannerColumns+` FROM banners ORDER BY position, created_at`)
}

func (r *bannerRepository) listBanners(ctx context.Context, query string) ([]*models.Banner, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying banners: %w", err)
	}

	defer rows.Close()

	var banners []*models.Banner

	for rows.Next() {
		banner, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}

		banners = append(banners, banner)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return banners, nil
}

func scanBanner(row rowScanner) (*models.Banner, error) {
	banner := &models.Banner{}

	err := row.Scan(&banner.ID, &banner.Title, &banner.Subtitle, &banner.Description, &banner.ImageURL,
		&banner.LinkURL, &banner.ButtonText, &banner.Position, &banner.IsActive, &banner.CreatedAt, &banner.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return banner, nil
}

const flashBannerColumns = `id, title, description, link_url, background_color, text_color, is_active, created_at, updated_at`

func (r *bannerRepository) CreateFlashBanner(ctx context.Context, banner *models.FlashBanner) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO flash_banners (title, description, link_url, background_color, text_color, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		banner.Title, banner.Description, banner.LinkURL, banner.BackgroundColor, banner.TextColor, banner.IsActive,
	).Scan(&banner.ID, &banner.CreatedAt, &banner.UpdatedAt)
}

func (r *bannerRepository) UpdateFlashBanner(ctx context.Context, banner *models.FlashBanner) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE flash_banners
		SET title = $1, description = $2, link_url = $3, background_color = $4, text_color = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		banner.Title, banner.Description, banner.LinkURL, banner.BackgroundColor, banner.TextColor, banner.IsActive, banner.ID,
	).Scan(&banner.UpdatedAt)
}

func (r *bannerRepository) DeleteFlashBanner(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM flash_banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete flash banner: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *bannerRepository) GetFlashBannerByID(ctx context.Context, id uuid.UUID) (*models.FlashBanner, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	row := r.DB.QueryRowContext(dbCtx, `SELECT `+flashBannerColumns+` FROM flash_banners WHERE id = $1`, id)

	return scanFlashBanner(row)
}

func (r *bannerRepository) ListActiveFlashBanners(ctx context.Context) ([]*models.FlashBanner, error) {
	return r.listFlashBanners(ctx, `SELECT `+flashBannerColumns+` FROM flash_banners WHERE is_active = TRUE ORDER BY created_at DESC`)
}

func (r *bannerRepository) ListFlashBanners(ctx context.Context) ([]*models.FlashBanner, error) {
	return r.listFlashBanners(ctx, `SELECT `+flashBannerColumns+` FROM flash_banners ORDER BY created_at DESC`)
}

func (r *bannerRepository) listFlashBanners(ctx context.Context, query string) ([]*models.FlashBanner, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying flash banners: %w", err)
	}

	defer rows.Close()

	var banners []*models.FlashBanner

	for rows.Next() {
		banner, err := scanFlashBanner(rows)
		if err != nil {
			return nil, err
		}

		banners = append(banners, banner)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return banners, nil
}

func scanFlashBanner(row rowScanner) (*models.FlashBanner, error) {
	banner := &models.FlashBanner{}

	err := row.Scan(&banner.ID, &banner.Title, &banner.Description, &banner.LinkURL,
		&banner.BackgroundColor, &banner.TextColor, &banner.IsActive, &banner.CreatedAt, &banner.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return banner, nil
}
