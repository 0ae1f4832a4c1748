package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	telemetry.SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { telemetry.SetLogger(slog.Default()) })

	router := gin.New()
	router.Use(RequestID(), Identity(), Logging())
	router.GET("/test", func(c *gin.Context) {
		c.Set("resumeId", int64(7))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatalf("expected log output")
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["msg"] != "request.complete" {
		t.Fatalf("expected request.complete, got %v", entry["msg"])
	}
	for _, key := range []string{"request_id", "method", "path", "status", "duration_ms", "user_id"} {
		if _, ok := entry[key]; !ok {
			t.Fatalf("expected field %q in log entry %v", key, entry)
		}
	}
	if entry["user_id"] != DefaultUserID {
		t.Fatalf("expected default user id, got %v", entry["user_id"])
	}
	if entry["resume_id"] == nil {
		t.Fatalf("expected resume_id field")
	}
}
