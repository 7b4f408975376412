package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/farmshop-si/farmshop-backend/pkg/config"
	"github.com/farmshop-si/farmshop-backend/pkg/flags"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	registry, err := flags.NewRegistry(flags.NewMemoryStore(), logg)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	return NewRouter(Params{
		Config: &config.Config{
			App: config.AppConfig{Env: "test"},
			JWT: config.JWTConfig{Secret: "secret", Issuer: "farmshop", ExpirationMinutes: 15},
		},
		Logger:       logg,
		FlagRegistry: registry,
	})
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Farmshop-Env"); got != "test" {
		t.Fatalf("env header missing, got %q", got)
	}
}

func TestRouterAdminFlagsRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/admin/v1/flags/", nil))

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
