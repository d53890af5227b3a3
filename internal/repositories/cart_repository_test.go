package repository_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhaus/storefront-platform/internal/models"
	repository "github.com/printhaus/storefront-platform/internal/repositories"
)

func TestCartRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCartRepo(db)
	ctx := t.Context()

	t.Run("CreateCart", func(t *testing.T) {
		t.Run("Anonymous session owner", func(t *testing.T) {
			// Arrange
			sessionID := "sess-4f2a"
			cart := &models.Cart{SessionID: &sessionID}
			now := time.Now()
			cartID := uuid.New()

			mock.ExpectQuery(`INSERT INTO carts \(user_id, session_id\) VALUES \(\$1, \$2\) RETURNING id, created_at, updated_at`).
				WithArgs(nil, sessionID).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(cartID, now, now))

			// Act
			err := repo.CreateCart(ctx, cart)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, cartID, cart.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Authenticated owner", func(t *testing.T) {
			// Arrange
			userID := uuid.New()
			cart := &models.Cart{UserID: &userID}
			now := time.Now()

			mock.ExpectQuery(`INSERT INTO carts`).
				WithArgs(userID, nil).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(uuid.New(), now, now))

			// Act
			err := repo.CreateCart(ctx, cart)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetCartByOwner", func(t *testing.T) {
		cartColumns := []string{"id", "user_id", "session_id", "created_at", "updated_at"}
		itemColumns := []string{"id", "cart_id", "product_id", "product_name", "product_description", "pricing_model",
			"quantity", "unit_price", "flat_fees", "total_price", "selected_specs", "custom_dimensions", "created_at"}

		t.Run("Session cart with lines", func(t *testing.T) {
			// Arrange
			sessionID := "sess-4f2a"
			cartID := uuid.New()
			lineID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(`SELECT id, user_id, session_id, created_at, updated_at FROM carts WHERE session_id = \$1`).
				WithArgs(sessionID).
				WillReturnRows(sqlmock.NewRows(cartColumns).AddRow(cartID, nil, sessionID, now, now))

			mock.ExpectQuery(`SELECT (.+) FROM cart_items WHERE cart_id = \$1 ORDER BY created_at`).
				WithArgs(cartID).
				WillReturnRows(sqlmock.NewRows(itemColumns).
					AddRow(lineID, cartID, uuid.New(), "Business Cards", "Premium", "", 100, 170.0, 0.0, 17000.0,
						[]byte(`["Paper: 600gsm"]`), []byte(nil), now))

			// Act
			cart, err := repo.GetCartByOwner(ctx, models.CartOwner{SessionID: &sessionID})

			// Assert
			require.NoError(t, err)
			require.NotNil(t, cart.SessionID)
			assert.Equal(t, sessionID, *cart.SessionID)
			assert.Nil(t, cart.UserID)
			require.Len(t, cart.Items, 1)
			assert.Equal(t, []string{"Paper: 600gsm"}, cart.Items[0].SelectedSpecs)
			assert.InDelta(t, 17000.0, cart.Total(), 0)
			assert.Equal(t, 1, cart.ItemCount())
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("No cart yet", func(t *testing.T) {
			// Arrange
			userID := uuid.New()

			mock.ExpectQuery(`SELECT id, user_id, session_id, created_at, updated_at FROM carts WHERE user_id = \$1`).
				WithArgs(userID).
				WillReturnError(sql.ErrNoRows)

			// Act
			cart, err := repo.GetCartByOwner(ctx, models.CartOwner{UserID: &userID})

			// Assert
			assert.Nil(t, cart)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Empty owner", func(t *testing.T) {
			// Act
			cart, err := repo.GetCartByOwner(ctx, models.CartOwner{})

			// Assert
			assert.Nil(t, cart)
			require.Error(t, err)
		})
	})

	t.Run("UpdateLineQuantity", func(t *testing.T) {
		lineID := uuid.New()

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(`UPDATE cart_items SET quantity = \$1, total_price = \$2 WHERE id = \$3`).
				WithArgs(250, 42500.0, lineID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.UpdateLineQuantity(ctx, lineID, 250, 42500.0)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Line gone", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(`UPDATE cart_items`).
				WithArgs(250, 42500.0, lineID).
				WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.UpdateLineQuantity(ctx, lineID, 250, 42500.0)

			// Assert
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DeleteLine", func(t *testing.T) {
		lineID := uuid.New()

		mock.ExpectExec(`DELETE FROM cart_items WHERE id = \$1`).
			WithArgs(lineID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteLine(ctx, lineID)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ClearCart", func(t *testing.T) {
		cartID := uuid.New()

		// Clearing an already empty cart is not an error.
		mock.ExpectExec(`DELETE FROM cart_items WHERE cart_id = \$1`).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ClearCart(ctx, cartID)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
