package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/printhaus/storefront-platform/internal/api/handlers"
	"github.com/printhaus/storefront-platform/internal/api/middleware"
	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
	"github.com/printhaus/storefront-platform/internal/services/mocks"
	"github.com/printhaus/storefront-platform/internal/utils/response"
)

func ownerRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))

	sessionID := "sess-handler"
	ctx := middleware.ContextWithOwner(req.Context(), models.CartOwner{SessionID: &sessionID})

	return req.WithContext(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var envelope response.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	return envelope
}

func TestGetCartHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		view := models.NewCartView(&models.Cart{
			ID:    uuid.New(),
			Items: []models.CartLineItem{{ID: uuid.New(), Quantity: 100, TotalPrice: 17000}},
		})
		mockService.On("GetCart", mock.Anything, mock.MatchedBy(func(o models.CartOwner) bool {
			return o.SessionID != nil && *o.SessionID == "sess-handler"
		})).Return(view, nil).Once()

		rec := httptest.NewRecorder()

		// Act
		handler.GetCart().ServeHTTP(rec, ownerRequest(http.MethodGet, "/cart", ""))

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeResponse(t, rec)
		assert.True(t, envelope.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - No resolved owner", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)

		// Act
		handler.GetCart().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetCart")
	})
}

func TestAddLineHandler(t *testing.T) {
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		view := models.NewCartView(&models.Cart{ID: uuid.New()})
		mockService.On("AddLine", mock.Anything, mock.Anything, mock.MatchedBy(func(req *models.AddLineRequest) bool {
			return req.ProductID == productID && req.Selections["paper_weight"] == "600g"
		})).Return(view, nil).Once()

		body := `{"product_id":"` + productID.String() + `","selections":{"paper_weight":"600g"}}`
		rec := httptest.NewRecorder()

		// Act
		handler.AddLine().ServeHTTP(rec, ownerRequest(http.MethodPost, "/cart/items", body))

		// Assert
		assert.Equal(t, http.StatusCreated, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Missing product id", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		rec := httptest.NewRecorder()

		// Act
		handler.AddLine().ServeHTTP(rec, ownerRequest(http.MethodPost, "/cart/items", `{}`))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "AddLine")
	})

	t.Run("Failure - Pricing error surfaces its code", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		mockService.On("AddLine", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.UnknownOptionError("paper_weight", "parchment")).Once()

		body := `{"product_id":"` + productID.String() + `"}`
		rec := httptest.NewRecorder()

		// Act
		handler.AddLine().ServeHTTP(rec, ownerRequest(http.MethodPost, "/cart/items", body))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeResponse(t, rec)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, errors.ErrCodeUnknownOption, envelope.Error.Code)
	})
}

func TestUpdateLineQuantityHandler(t *testing.T) {
	lineID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		view := models.NewCartView(&models.Cart{ID: uuid.New()})
		mockService.On("UpdateLineQuantity", mock.Anything, mock.Anything, lineID, mock.MatchedBy(func(req *models.UpdateLineQuantityRequest) bool {
			return req.Quantity == 250
		})).Return(view, nil).Once()

		req := ownerRequest(http.MethodPatch, "/cart/items/"+lineID.String(), `{"quantity":250}`)
		req.SetPathValue("id", lineID.String())
		rec := httptest.NewRecorder()

		// Act
		handler.UpdateLineQuantity().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Zero quantity fails validation", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		req := ownerRequest(http.MethodPatch, "/cart/items/"+lineID.String(), `{"quantity":0}`)
		req.SetPathValue("id", lineID.String())
		rec := httptest.NewRecorder()

		// Act
		handler.UpdateLineQuantity().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "UpdateLineQuantity")
	})

	t.Run("Failure - Bad line id", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		req := ownerRequest(http.MethodPatch, "/cart/items/not-a-uuid", `{"quantity":2}`)
		req.SetPathValue("id", "not-a-uuid")
		rec := httptest.NewRecorder()

		// Act
		handler.UpdateLineQuantity().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "UpdateLineQuantity")
	})
}
