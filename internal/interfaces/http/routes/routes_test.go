package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doramashorts/backend/internal/infrastructure/auth"
	"github.com/doramashorts/backend/internal/interfaces/http/handlers"
	adminHandlers "github.com/doramashorts/backend/internal/interfaces/http/handlers/admin"
	"github.com/doramashorts/backend/internal/interfaces/http/middleware"
	"github.com/doramashorts/backend/internal/shared/authorization"
	"github.com/doramashorts/backend/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// roleChecker allows admins only.
type roleChecker struct{}

func (roleChecker) Enforce(role, resource, action string) (bool, error) {
	return role == string(authorization.RoleAdmin), nil
}

// newGuardedEngine registers the real route table. Handlers are built without
// use cases, so only requests rejected by middleware may be sent.
func newGuardedEngine(t *testing.T, jwt *auth.JWTService) *gin.Engine {
	t.Helper()
	log := logger.NewNopLogger()
	authMW := middleware.NewAuthMiddleware(jwt, log)

	engine := gin.New()
	api := engine.Group("/api")
	SetupAuthRoutes(api, &AuthRouteConfig{
		AuthHandler:    handlers.NewAuthHandler(nil, nil, nil, log),
		AuthMiddleware: authMW,
	})
	SetupSubscriptionRoutes(api, &SubscriptionRouteConfig{
		SubscriptionHandler: handlers.NewSubscriptionHandler(nil, nil, nil, log),
		AuthMiddleware:      authMW,
	})
	SetupEntitlementRoutes(api, &EntitlementRouteConfig{
		EntitlementHandler: handlers.NewEntitlementHandler(nil, nil, log),
		CheckoutHandler:    handlers.NewCheckoutHandler(nil, log),
		AuthMiddleware:     authMW,
	})
	SetupVideoRoutes(api, &VideoRouteConfig{
		VideoHandler:   handlers.NewVideoHandler(nil, nil, nil, nil, log),
		AuthMiddleware: authMW,
	})
	SetupAdminRoutes(api, &AdminRouteConfig{
		SubscriptionHandler:  adminHandlers.NewSubscriptionHandler(nil, nil, nil, log),
		VideoHandler:         adminHandlers.NewVideoHandler(nil, nil, log),
		AuthMiddleware:       authMW,
		PermissionMiddleware: middleware.NewPermissionMiddleware(roleChecker{}, log),
	})
	return engine
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := newGuardedEngine(t, auth.NewJWTService("secret", 60))

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/subscriptions"},
		{http.MethodGet, "/api/me/subscription"},
		{http.MethodGet, "/api/me/entitlement"},
		{http.MethodGet, "/api/me/entitlement/events"},
		{http.MethodPost, "/api/checkout/messages"},
		{http.MethodGet, "/api/videos/vid_abc/playback"},
		{http.MethodPost, "/api/videos/vid_abc/purchases"},
		{http.MethodGet, "/api/admin/subscriptions/pending"},
		{http.MethodPost, "/api/admin/subscriptions/sub_abc/approve"},
		{http.MethodPost, "/api/admin/subscriptions/sub_abc/reject"},
		{http.MethodPost, "/api/admin/videos"},
		{http.MethodDelete, "/api/admin/videos/vid_abc"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	jwt := auth.NewJWTService("secret", 60)
	engine := newGuardedEngine(t, jwt)

	tok, err := jwt.Issue(7, "ana@example.com", authorization.RoleUser)
	require.NoError(t, err)

	for _, path := range []string{
		"/api/admin/subscriptions/pending",
		"/api/admin/subscriptions/sub_abc/approve",
		"/api/admin/videos",
	} {
		method := http.MethodPost
		if path == "/api/admin/subscriptions/pending" {
			method = http.MethodGet
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}
