package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/printhaus/storefront-platform/internal/errors"
	"github.com/printhaus/storefront-platform/internal/models"
	"github.com/printhaus/storefront-platform/internal/utils/response"
)

// SessionHeader carries the anonymous device session id. The storefront
// client generates one on first visit and sends it on every request; the
// server mints one when it is missing and echoes it back.
const SessionHeader = "X-Session-ID"

type contextKey string

const (
	userContextKey  = contextKey("user")
	ownerContextKey = contextKey("owner")
)

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey}
}

// Authenticate requires a valid bearer token and stores the claims and the
// resulting cart owner on the context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.verifyRequest(w, r)
		if !ok {
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextWithUser(r, claims)))
	}
}

// RequireAdmin is Authenticate plus the admin gate for dashboard routes.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.verifyRequest(w, r)
		if !ok {
			return
		}

		if !claims.IsAdmin {
			LoggerFromContext(r.Context()).Warn("Non-admin user denied admin route",
				slog.String("userId", claims.UserID.String()))
			response.Error(w, errors.ForbiddenError("Admin access required"))

			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextWithUser(r, claims)))
	}
}

// ResolveOwner identifies who owns the cart for shopper routes. A valid
// bearer token wins; otherwise the session header is used, minted on the
// spot when absent. A presented token must still verify.
func (m *AuthMiddleware) ResolveOwner(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			claims, ok := m.verifyRequest(w, r)
			if !ok {
				return
			}

			next.ServeHTTP(w, r.WithContext(m.contextWithUser(r, claims)))

			return
		}

		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		w.Header().Set(SessionHeader, sessionID)

		owner := models.CartOwner{SessionID: &sessionID}
		ctx := context.WithValue(r.Context(), ownerContextKey, owner)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (m *AuthMiddleware) verifyRequest(w http.ResponseWriter, r *http.Request) (*models.Claims, bool) {
	logger := LoggerFromContext(r.Context())

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logger.Warn("Missing authorization header")
		response.Error(w, errors.UnauthorizedError("Authorization header is required"))

		return nil, false
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		logger.Warn("Invalid authorization header format")
		response.Error(w, errors.UnauthorizedError("Invalid authorization format"))

		return nil, false
	}

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))

			return nil, errors.BadRequestError("unexpected signing method")
		}

		return m.jwtKey, nil
	})
	if err != nil {
		logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
		response.Error(w, errors.UnauthorizedError("Invalid or expired token"))

		return nil, false
	}

	if !token.Valid {
		logger.Warn("Invalid token")
		response.Error(w, errors.UnauthorizedError("Invalid token"))

		return nil, false
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		logger.Warn("Expired token", slog.String("userId", claims.UserID.String()))
		response.Error(w, errors.UnauthorizedError("Token expired"))

		return nil, false
	}

	return claims, true
}

func (m *AuthMiddleware) contextWithUser(r *http.Request, claims *models.Claims) context.Context {
	ctx := context.WithValue(r.Context(), userContextKey, claims)
	ctx = context.WithValue(ctx, ownerContextKey, models.CartOwner{UserID: &claims.UserID})

	requestScopedLogger := LoggerFromContext(ctx).With(slog.String("userId", claims.UserID.String()))
	ctx = context.WithValue(ctx, loggerKey, requestScopedLogger)

	return ctx
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(userContextKey).(*models.Claims)

	return claims, ok
}

func OwnerFromContext(ctx context.Context) (models.CartOwner, bool) {
	owner, ok := ctx.Value(ownerContextKey).(models.CartOwner)

	return owner, ok
}

// ContextWithOwner is used by tests to pre-seed a resolved owner.
func ContextWithOwner(ctx context.Context, owner models.CartOwner) context.Context {
	return context.WithValue(ctx, ownerContextKey, owner)
}

// ContextWithClaims is used by tests to pre-seed verified claims.
func ContextWithClaims(ctx context.Context, claims *models.Claims) context.Context {
	ctx = context.WithValue(ctx, userContextKey, claims)

	return context.WithValue(ctx, ownerContextKey, models.CartOwner{UserID: &claims.UserID})
}
