package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gleam_backend/internal/config"
	"gleam_backend/internal/model"
	"gleam_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNavigation(t *testing.T) {
	tests := []struct {
		name       string
		role       model.UserRole
		path       string
		wantAction NavAction
		wantTarget string
	}{
		{"no identity redirects to login", "", "/portal/patient", NavRedirect, "/login"},
		{"unknown role redirects to login", "ghost", "/portal/patient", NavRedirect, "/login"},
		{"admin at portal root goes home", model.Admin, "/portal", NavRedirect, "/portal/admin"},
		{"admin at portal root with slash", model.Admin, "/portal/", NavRedirect, "/portal/admin"},
		{"super admin shares the admin segment", model.SuperAdmin, "/portal", NavRedirect, "/portal/admin"},
		{"super admin inside admin pages", model.SuperAdmin, "/portal/admin/users", NavAllow, ""},
		{"patient on own segment", model.Patient, "/portal/patient", NavAllow, ""},
		{"patient on own nested page", model.Patient, "/portal/patient/quiz/3", NavAllow, ""},
		{"patient in health worker pages sent home", model.Patient, "/portal/health_worker/screenings", NavRedirect, "/portal/patient"},
		{"patient in admin pages sent home", model.Patient, "/portal/admin", NavRedirect, "/portal/patient"},
		{"management on own segment", model.Management, "/portal/management/reports", NavAllow, ""},
		{"health worker in management pages sent home", model.HealthWorker, "/portal/management", NavRedirect, "/portal/health_worker"},
		{"admin in patient pages sent home", model.Admin, "/portal/patient/quiz", NavRedirect, "/portal/admin"},
		{"prefix is not segment equality", model.Patient, "/portal/patients", NavRedirect, "/portal/patient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveNavigation(tt.role, tt.path)
			assert.Equal(t, tt.wantAction, got.Action)
			assert.Equal(t, tt.wantTarget, got.Target)
		})
	}
}

func TestResolveNavigationIsPure(t *testing.T) {
	first := ResolveNavigation(model.Patient, "/portal/admin/users")
	second := ResolveNavigation(model.Patient, "/portal/admin/users")
	assert.Equal(t, first, second)
}

func guardTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	portal := router.Group(PortalRoot)
	portal.Use(PortalGuard(cfg))
	portal.GET("", func(c *gin.Context) { c.String(http.StatusOK, "root") })
	portal.GET("/:segment", func(c *gin.Context) { c.String(http.StatusOK, c.Param("segment")) })
	portal.GET("/:segment/*page", func(c *gin.Context) { c.String(http.StatusOK, c.Param("segment")) })
	return router
}

func guardTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "0123456789abcdef0123456789abcdef",
			ExpireTime: time.Hour,
		},
	}
}

func tokenFor(t *testing.T, cfg *config.Config, role model.UserRole) string {
	t.Helper()
	user := &model.User{Name: "Tester", Email: "tester@gleam.local", Role: role}
	user.ID = 42
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)
	return token
}

func TestPortalGuardWithoutToken(t *testing.T) {
	cfg := guardTestConfig()
	router := guardTestRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portal/patient", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPortalGuardMalformedToken(t *testing.T) {
	cfg := guardTestConfig()
	router := guardTestRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portal/patient", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: "not-a-jwt"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPortalGuardRedirectsForeignSegment(t *testing.T) {
	cfg := guardTestConfig()
	router := guardTestRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portal/health_worker/screenings", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: tokenFor(t, cfg, model.Patient)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/portal/patient", w.Header().Get("Location"))
}

func TestPortalGuardNormalizesRoot(t *testing.T) {
	cfg := guardTestConfig()
	router := guardTestRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portal", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: tokenFor(t, cfg, model.Admin)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/portal/admin", w.Header().Get("Location"))
}

func TestPortalGuardAllowsOwnSegment(t *testing.T) {
	cfg := guardTestConfig()
	router := guardTestRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portal/patient/quiz", nil)
	req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: tokenFor(t, cfg, model.Patient)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "patient", w.Body.String())
}

func TestPortalGuardAcceptsBearerHeader(t *testing.T) {
	cfg := guardTestConfig()
	router := guardTestRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portal/management", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, model.Management))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
