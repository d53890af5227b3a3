package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhaus/storefront-platform/internal/api/middleware"
	"github.com/printhaus/storefront-platform/internal/models"
)

var jwtKey = []byte("test-secret")

func signToken(t *testing.T, userID uuid.UUID, isAdmin bool, expiresAt time.Time) string {
	t.Helper()

	claims := &models.Claims{
		UserID:  userID,
		Email:   "shopper@example.com",
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
	require.NoError(t, err)

	return token
}

func TestResolveOwner(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	t.Run("Mints a session id when none is sent", func(t *testing.T) {
		// Arrange
		var owner models.CartOwner

		var resolved bool

		handler := authMiddleware.ResolveOwner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner, resolved = middleware.OwnerFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		require.True(t, resolved)
		require.NotNil(t, owner.SessionID)
		assert.Nil(t, owner.UserID)
		assert.Equal(t, *owner.SessionID, rec.Header().Get(middleware.SessionHeader), "minted id must be echoed to the client")
	})

	t.Run("Reuses the client's session id", func(t *testing.T) {
		// Arrange
		var owner models.CartOwner

		handler := authMiddleware.ResolveOwner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner, _ = middleware.OwnerFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set(middleware.SessionHeader, "sess-existing")

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		require.NotNil(t, owner.SessionID)
		assert.Equal(t, "sess-existing", *owner.SessionID)
	})

	t.Run("Valid bearer token wins over the session header", func(t *testing.T) {
		// Arrange
		userID := uuid.New()

		var owner models.CartOwner

		handler := authMiddleware.ResolveOwner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner, _ = middleware.OwnerFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, userID, false, time.Now().Add(time.Hour)))
		req.Header.Set(middleware.SessionHeader, "sess-ignored")

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		require.NotNil(t, owner.UserID)
		assert.Equal(t, userID, *owner.UserID)
		assert.Nil(t, owner.SessionID)
	})

	t.Run("A presented token must still verify", func(t *testing.T) {
		// Arrange
		handler := authMiddleware.ResolveOwner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not run")
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthenticate(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	t.Run("Missing header", func(t *testing.T) {
		// Arrange
		handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not run")
		}))

		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Expired token", func(t *testing.T) {
		// Arrange
		handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not run")
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New(), false, time.Now().Add(-time.Hour)))

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid token exposes claims", func(t *testing.T) {
		// Arrange
		userID := uuid.New()

		var claims *models.Claims

		handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ = middleware.ClaimsFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, userID, false, time.Now().Add(time.Hour)))

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		require.NotNil(t, claims)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	t.Run("Non-admin gets 403", func(t *testing.T) {
		// Arrange
		handler := authMiddleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not run")
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/products", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New(), false, time.Now().Add(time.Hour)))

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Admin passes", func(t *testing.T) {
		// Arrange
		var called bool

		handler := authMiddleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/products", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New(), true, time.Now().Add(time.Hour)))

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
