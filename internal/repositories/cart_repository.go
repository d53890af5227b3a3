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

type CartRepository interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartByOwner(ctx context.Context, owner models.CartOwner) (*models.Cart, error)
	InsertLine(ctx context.Context, line *models.CartLineItem) error
	UpdateLineQuantity(ctx context.Context, lineID uuid.UUID, quantity int, totalPrice float64) error
	DeleteLine(ctx context.Context, lineID uuid.UUID) error
	ClearCart(ctx context.Context, cartID uuid.UUID) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO carts (user_id, session_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, nullableUUID(cart.UserID), nullableString(cart.SessionID)).
		Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
}

// GetCartByOwner loads the cart row and its lines for the resolved owner.
// Exactly one of the owner fields is set; the corresponding column filters
// the lookup.
func (r *cartRepository) GetCartByOwner(ctx context.Context, owner models.CartOwner) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, session_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`

	var arg any

	switch {
	case owner.UserID != nil:
		arg = *owner.UserID
	case owner.SessionID != nil:
		query = `
		SELECT id, user_id, session_id, created_at, updated_at
		FROM carts
		WHERE session_id = $1
	`
		arg = *owner.SessionID
	default:
		return nil, fmt.Errorf("cart owner is empty")
	}

	cart := &models.Cart{}

	var userID uuid.NullUUID

	var sessionID sql.NullString

	err := r.DB.QueryRowContext(dbCtx, query, arg).
		Scan(&cart.ID, &userID, &sessionID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	if userID.Valid {
		cart.UserID = &userID.UUID
	}

	if sessionID.Valid {
		cart.SessionID = &sessionID.String
	}

	items, err := r.loadLines(dbCtx, cart.ID)
	if err != nil {
		return nil, err
	}

	cart.Items = items

	return cart, nil
}

func (r *cartRepository) InsertLine(ctx context.Context, line *models.CartLineItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	specsJSON, err := json.Marshal(line.SelectedSpecs)
	if err != nil {
		return fmt.Errorf("failed to marshal selected specs: %w", err)
	}

	var dimsJSON []byte
	if line.CustomDimensions != nil {
		dimsJSON, err = json.Marshal(line.CustomDimensions)
		if err != nil {
			return fmt.Errorf("failed to marshal custom dimensions: %w", err)
		}
	}

	query := `
		INSERT INTO cart_items (id, cart_id, product_id, product_name, product_description, pricing_model,
		                        quantity, unit_price, flat_fees, total_price, selected_specs, custom_dimensions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		line.ID, line.CartID, line.ProductID, line.ProductName, line.ProductDescription, string(line.PricingModel),
		line.Quantity, line.UnitPrice, line.FlatFees, line.TotalPrice, specsJSON, dimsJSON,
	).Scan(&line.CreatedAt)
}

func (r *cartRepository) UpdateLineQuantity(ctx context.Context, lineID uuid.UUID, quantity int, totalPrice float64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_items
		SET quantity = $1, total_price = $2
		WHERE id = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, quantity, totalPrice, lineID)
	if err != nil {
		return fmt.Errorf("failed to update cart line: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *cartRepository) DeleteLine(ctx context.Context, lineID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *cartRepository) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

func (r *cartRepository) loadLines(ctx context.Context, cartID uuid.UUID) ([]models.CartLineItem, error) {
	query := `
		SELECT id, cart_id, product_id, product_name, product_description, pricing_model,
		       quantity, unit_price, flat_fees, total_price, selected_specs, custom_dimensions, created_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("querying cart items: %w", err)
	}

	defer rows.Close()

	var items []models.CartLineItem

	for rows.Next() {
		var line models.CartLineItem

		var pricingModel string

		var specsJSON, dimsJSON []byte

		err := rows.Scan(&line.ID, &line.CartID, &line.ProductID, &line.ProductName, &line.ProductDescription,
			&pricingModel, &line.Quantity, &line.UnitPrice, &line.FlatFees, &line.TotalPrice,
			&specsJSON, &dimsJSON, &line.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning cart item: %w", err)
		}

		line.PricingModel = models.PricingModel(pricingModel)

		if len(specsJSON) > 0 {
			if err := json.Unmarshal(specsJSON, &line.SelectedSpecs); err != nil {
				return nil, fmt.Errorf("failed to unmarshal selected specs: %w", err)
			}
		}

		if len(dimsJSON) > 0 {
			if err := json.Unmarshal(dimsJSON, &line.CustomDimensions); err != nil {
				return nil, fmt.Errorf("failed to unmarshal custom dimensions: %w", err)
			}
		}

		items = append(items, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func nullableUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}

	return *id
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}

func requireRowsAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
