package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/printhaus/storefront-platform/internal/models"
	"github.com/printhaus/storefront-platform/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, query *models.ListProductsQuery) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

// Customization axes and the special pricing model are stored as JSONB
// alongside the scalar columns.
func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	axesJSON, pricingJSON, err := marshalProductJSON(product)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (name, category, description, base_price, design_fee, image_url, is_active, axes, pricing)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Category, product.Description, product.BasePrice, product.DesignFee,
		product.ImageURL, product.IsActive, axesJSON, pricingJSON,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, category, description, base_price, design_fee, image_url, is_active, axes, pricing, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	return scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	axesJSON, pricingJSON, err := marshalProductJSON(product)
	if err != nil {
		return err
	}

	query := `
		UPDATE products
		SET name = $1, category = $2, description = $3, base_price = $4, design_fee = $5,
		    image_url = $6, is_active = $7, axes = $8, pricing = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Category, product.Description, product.BasePrice, product.DesignFee,
		product.ImageURL, product.IsActive, axesJSON, pricingJSON, product.ID,
	).Scan(&product.UpdatedAt)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, query *models.ListProductsQuery) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where := ` WHERE 1=1`

	args := []any{}

	if query.ActiveOnly {
		where += ` AND is_active = TRUE`
	}

	if query.Search != "" {
		args = append(args, "%"+query.Search+"%")
		where += fmt.Sprintf(` AND (name ILIKE $%d OR description ILIKE $%d)`, len(args), len(args))
	}

	if query.Category != "" {
		args = append(args, query.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}

	size := query.PageSize
	if size < 1 {
		size = 20
	}

	args = append(args, size, (page-1)*size)
	listQuery := `
		SELECT id, name, category, description, base_price, design_fee, image_url, is_active, axes, pricing, created_at, updated_at
		FROM products` + where + fmt.Sprintf(`
		ORDER BY name
		LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	var axesJSON, pricingJSON []byte

	err := row.Scan(&product.ID, &product.Name, &product.Category, &product.Description,
		&product.BasePrice, &product.DesignFee, &product.ImageURL, &product.IsActive,
		&axesJSON, &pricingJSON, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	if len(axesJSON) > 0 {
		if err := json.Unmarshal(axesJSON, &product.Axes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product axes: %w", err)
		}
	}

	if len(pricingJSON) > 0 {
		if err := json.Unmarshal(pricingJSON, &product.Pricing); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product pricing: %w", err)
		}
	}

	return product, nil
}

func marshalProductJSON(product *models.Product) (axes, pricing []byte, err error) {
	axes, err = json.Marshal(product.Axes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal product axes: %w", err)
	}

	if product.Pricing != nil {
		pricing, err = json.Marshal(product.Pricing)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal product pricing: %w", err)
		}
	}

	return axes, pricing, nil
}
