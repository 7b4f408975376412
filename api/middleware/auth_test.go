package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgAuth "github.com/farmshop-si/farmshop-backend/pkg/auth"
	"github.com/farmshop-si/farmshop-backend/pkg/config"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
)

type stubSessionChecker struct {
	active bool
	err    error
}

func (s *stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.active, s.err
}

var testJWTConfig = config.JWTConfig{
	Secret:            "middleware-secret",
	Issuer:            "farmshop",
	ExpirationMinutes: 15,
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func mintTestToken(t *testing.T) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(testJWTConfig, time.Now(), pkgAuth.AccessTokenPayload{
		Email: "admin@farmshop.si",
		JTI:   "session-1",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestAdminAuthAcceptsValidToken(t *testing.T) {
	var seenEmail, seenSession string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenEmail = AdminEmailFromContext(r.Context())
		seenSession = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := AdminAuth(testJWTConfig, &stubSessionChecker{active: true}, testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if seenEmail != "admin@farmshop.si" {
		t.Fatalf("admin email not seeded, got %q", seenEmail)
	}
	if seenSession != "session-1" {
		t.Fatalf("session id not seeded, got %q", seenSession)
	}
}

func TestAdminAuthRejectsMissingHeader(t *testing.T) {
	handler := AdminAuth(testJWTConfig, &stubSessionChecker{active: true}, testLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminAuthRejectsGarbageToken(t *testing.T) {
	handler := AdminAuth(testJWTConfig, &stubSessionChecker{active: true}, testLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminAuthRejectsRevokedSession(t *testing.T) {
	handler := AdminAuth(testJWTConfig, &stubSessionChecker{active: false}, testLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
