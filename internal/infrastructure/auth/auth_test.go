package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"messaging-server/internal/infrastructure/auth"
)

func setupRouter() (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)
	var captured uint
	r := gin.New()
	r.Use(auth.NewIdentity(zerolog.Nop()).Middleware())
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := auth.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		captured = id
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestMiddlewareExtractsUserID(t *testing.T) {
	router, captured := setupRouter()

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-User", "42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if *captured != 42 {
		t.Errorf("Expected user id 42, got %d", *captured)
	}
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	router, _ := setupRouter()

	req, _ := http.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"non-numeric", "alice"},
		{"zero", "0"},
		{"negative", "-3"},
		{"overflow", "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupRouter()

			req, _ := http.NewRequest("GET", "/whoami", nil)
			req.Header.Set("X-User", tt.value)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400 for %q, got %d", tt.value, w.Code)
			}
		})
	}
}
