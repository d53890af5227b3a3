package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	"github.com/printhaus/storefront-platform/internal/api/middleware"
	"github.com/printhaus/storefront-platform/internal/models"
)

// NewUserRequest builds a request carrying verified claims, as if it had
// passed through the auth middleware.
func NewUserRequest(method, target string, body io.Reader, userID uuid.UUID, isAdmin bool, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)

	claims := &models.Claims{UserID: userID, Email: "test@example.com", IsAdmin: isAdmin}
	ctx := middleware.ContextWithClaims(req.Context(), claims)

	return req.WithContext(ctx)
}

// NewSessionRequest builds a request owned by an anonymous device session.
func NewSessionRequest(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)
	req.Header.Set(middleware.SessionHeader, sessionID)

	ctx := middleware.ContextWithOwner(req.Context(), models.CartOwner{SessionID: &sessionID})

	return req.WithContext(ctx)
}

func newRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.ContextWithLogger(req.Context(), logger)

	return req.WithContext(ctx)
}
