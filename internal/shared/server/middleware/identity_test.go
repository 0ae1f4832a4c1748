package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIdentityDefaultsWhenHeaderMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identity())

	var seen string
	router.GET("/api/resumes", func(c *gin.Context) {
		seen = UserIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if seen != DefaultUserID {
		t.Fatalf("expected default identity %q, got %q", DefaultUserID, seen)
	}
}

func TestIdentityHonorsHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identity())

	var seen string
	router.GET("/api/resumes", func(c *gin.Context) {
		seen = UserIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	req.Header.Set("X-User-Id", "laptop")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if seen != "laptop" {
		t.Fatalf("expected identity laptop, got %q", seen)
	}
}
