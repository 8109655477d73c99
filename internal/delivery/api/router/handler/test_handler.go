package handler

import (
	"net/http"

	"petwelfare/internal/delivery/api/middleware"
	"petwelfare/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid bearer token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	// Get the caller resolved by the auth middleware
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Caller not found in context")
	}

	return response.SuccessMessage(c, http.StatusOK, "Authentication middleware test successful", map[string]any{
		"userId":  actor.UserID,
		"role":    actor.Role,
		"module":  actor.Module,
		"storeId": actor.StoreID,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.SuccessMessage(c, http.StatusOK, "Public endpoint test successful", map[string]any{
		"status": "public",
	})
}
