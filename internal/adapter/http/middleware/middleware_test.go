package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskloop/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, &buf
}

func TestCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generated when missing", func(t *testing.T) {
		var seen string
		r := gin.New()
		r.Use(CorrelationID())
		r.GET("/x", func(c *gin.Context) {
			seen, _ = CorrelationIDFrom(c.Request.Context())
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		if seen == "" || w.Header().Get(HeaderCorrelationID) != seen {
			t.Fatalf("expected generated id echoed, got %q / %q", seen, w.Header().Get(HeaderCorrelationID))
		}
	})

	t.Run("caller id is kept", func(t *testing.T) {
		r := gin.New()
		r.Use(CorrelationID())
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderCorrelationID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderCorrelationID); got != "abc-123" {
			t.Fatalf("expected abc-123, got %q", got)
		}
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, buf := newTestLogger()

	r := gin.New()
	r.Use(CorrelationID(), RequestLogger(logger))
	r.GET("/clients/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/clients/c-9", nil)
	req.Header.Set(HeaderCorrelationID, "cid-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log entry: %v (%s)", err, buf.String())
	}
	if entry["level"] != "warning" || entry["route"] != "/clients/:id" || entry["correlation_id"] != "cid-1" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["status"] != float64(http.StatusNotFound) {
		t.Fatalf("unexpected status: %v", entry["status"])
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, buf := newTestLogger()

	r := gin.New()
	r.Use(Recovery(logger))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "INTERNAL_ERROR" || strings.Contains(w.Body.String(), "kaboom") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), "kaboom") {
		t.Fatalf("panic not logged: %s", buf.String())
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.PATCH("/jobs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/jobs/j-1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("unexpected allow origin: %q", got)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch) {
		t.Fatalf("PATCH not allowed: %q", w.Header().Get("Access-Control-Allow-Methods"))
	}
}
