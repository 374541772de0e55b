package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/store"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/utils"
)

const testSecret = "test-secret"

func newLockedRouter(t *testing.T) (*gin.Engine, *repository.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.New(store.NewMemory())
	if err := repo.Load(); err != nil {
		t.Fatalf("load repository: %v", err)
	}

	r := gin.New()
	r.Use(AuthMiddleware(repo, testSecret))
	r.GET("/data", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, repo
}

func getWithAuth(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func setTestPin(t *testing.T, repo *repository.Repository) {
	t.Helper()
	hash, err := utils.HashPin("1234")
	if err != nil {
		t.Fatalf("hash pin: %v", err)
	}
	if err := repo.SetPinHash(hash); err != nil {
		t.Fatalf("save pin: %v", err)
	}
}

func TestAuthMiddleware_NoPinPassesThrough(t *testing.T) {
	r, _ := newLockedRouter(t)

	if w := getWithAuth(r, ""); w.Code != http.StatusOK {
		t.Errorf("status without PIN = %d, want 200", w.Code)
	}
}

func TestAuthMiddleware_PinSetRejectsWithoutToken(t *testing.T) {
	r, repo := newLockedRouter(t)
	setTestPin(t, repo)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not a bearer token", "Token abc"},
		{"garbage bearer token", "Bearer not.a.token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := getWithAuth(r, tc.header); w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuthMiddleware_PinSetAcceptsValidToken(t *testing.T) {
	r, repo := newLockedRouter(t)
	setTestPin(t, repo)

	token, err := utils.GenerateToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if w := getWithAuth(r, "Bearer "+token); w.Code != http.StatusOK {
		t.Errorf("status with valid token = %d, want 200", w.Code)
	}
}

func TestAuthMiddleware_RejectsTokenFromOtherSecret(t *testing.T) {
	r, repo := newLockedRouter(t)
	setTestPin(t, repo)

	token, err := utils.GenerateToken("another-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if w := getWithAuth(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("status with foreign token = %d, want 401", w.Code)
	}
}
