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

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByOwner(ctx context.Context, owner models.CartOwner) ([]*models.Order, error)
	ListOrders(ctx context.Context, page, size int) ([]*models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder inserts the order and its line snapshots in one transaction
// so a failure never leaves a header without lines.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (id, order_number, user_id, session_id, customer_name, customer_email,
		                    delivery_address, notes, status, payment_status, subtotal, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, orderQuery,
		order.ID, order.OrderNumber, nullableUUID(order.UserID), nullableString(order.SessionID),
		order.CustomerName, order.CustomerEmail, order.DeliveryAddress, order.Notes,
		string(order.Status), string(order.PaymentStatus), order.Subtotal, order.TotalAmount,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, product_name, pricing_model,
		                         quantity, unit_price, flat_fees, total_price, selected_specs, custom_dimensions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for i := range order.Items {
		item := &order.Items[i]

		specsJSON, err := json.Marshal(item.SelectedSpecs)
		if err != nil {
			return fmt.Errorf("failed to marshal selected specs: %w", err)
		}

		var dimsJSON []byte
		if item.CustomDimensions != nil {
			dimsJSON, err = json.Marshal(item.CustomDimensions)
			if err != nil {
				return fmt.Errorf("failed to marshal custom dimensions: %w", err)
			}
		}

		_, err = tx.ExecContext(dbCtx, itemQuery,
			item.ID, order.ID, item.ProductID, item.ProductName, string(item.PricingModel),
			item.Quantity, item.UnitPrice, item.FlatFees, item.TotalPrice, specsJSON, dimsJSON)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, order_number, user_id, session_id, customer_name, customer_email,
		       delivery_address, notes, status, payment_status, subtotal, total_amount, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(dbCtx, order.ID)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

func (r *orderRepository) ListOrdersByOwner(ctx context.Context, owner models.CartOwner) ([]*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, order_number, user_id, session_id, customer_name, customer_email,
		       delivery_address, notes, status, payment_status, subtotal, total_amount, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var arg any

	switch {
	case owner.UserID != nil:
		arg = *owner.UserID
	case owner.SessionID != nil:
		query = `
		SELECT id, order_number, user_id, session_id, customer_name, customer_email,
		       delivery_address, notes, status, payment_status, subtotal, total_amount, created_at, updated_at
		FROM orders
		WHERE session_id = $1
		ORDER BY created_at DESC
	`
		arg = *owner.SessionID
	default:
		return nil, fmt.Errorf("order owner is empty")
	}

	rows, err := r.DB.QueryContext(dbCtx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}

	defer rows.Close()

	return r.collectOrders(dbCtx, rows)
}

func (r *orderRepository) ListOrders(ctx context.Context, page, size int) ([]*models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	if page < 1 {
		page = 1
	}

	if size < 1 {
		size = 20
	}

	query := `
		SELECT id, order_number, user_id, session_id, customer_name, customer_email,
		       delivery_address, notes, status, payment_status, subtotal, total_amount, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("querying orders: %w", err)
	}

	defer rows.Close()

	orders, err := r.collectOrders(dbCtx, rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *orderRepository) collectOrders(ctx context.Context, rows *sql.Rows) ([]*models.Order, error) {
	var orders []*models.Order

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		items, err := r.loadItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}

		order.Items = items
	}

	return orders, nil
}

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}

	var userID uuid.NullUUID

	var sessionID sql.NullString

	var status, paymentStatus string

	err := row.Scan(&order.ID, &order.OrderNumber, &userID, &sessionID,
		&order.CustomerName, &order.CustomerEmail, &order.DeliveryAddress, &order.Notes,
		&status, &paymentStatus, &order.Subtotal, &order.TotalAmount, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	if userID.Valid {
		order.UserID = &userID.UUID
	}

	if sessionID.Valid {
		order.SessionID = &sessionID.String
	}

	order.Status = models.OrderStatus(status)
	order.PaymentStatus = models.PaymentStatus(paymentStatus)

	return order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderLineItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, pricing_model,
		       quantity, unit_price, flat_fees, total_price, selected_specs, custom_dimensions, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}

	defer rows.Close()

	var items []models.OrderLineItem

	for rows.Next() {
		var item models.OrderLineItem

		var pricingModel string

		var specsJSON, dimsJSON []byte

		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &pricingModel,
			&item.Quantity, &item.UnitPrice, &item.FlatFees, &item.TotalPrice, &specsJSON, &dimsJSON, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}

		item.PricingModel = models.PricingModel(pricingModel)

		if len(specsJSON) > 0 {
			if err := json.Unmarshal(specsJSON, &item.SelectedSpecs); err != nil {
				return nil, fmt.Errorf("failed to unmarshal selected specs: %w", err)
			}
		}

		if len(dimsJSON) > 0 {
			if err := json.Unmarshal(dimsJSON, &item.CustomDimensions); err != nil {
				return nil, fmt.Errorf("failed to unmarshal custom dimensions: %w", err)
			}
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
