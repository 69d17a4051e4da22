package observability

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func newTestEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(RequestLogger(zerolog.New(buf)))
	r.Use(RequestMetricsMiddleware("test"))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRequestIDAssigned(t *testing.T) {
	var buf bytes.Buffer
	r := newTestEngine(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := w.Header().Get(HeaderRequestID)
	if len(id) != 26 {
		t.Fatalf("expected ulid request id, got %q", id)
	}
	if !strings.Contains(buf.String(), id) {
		t.Fatalf("request log missing id: %q", buf.String())
	}
}

func TestRequestIDPreserved(t *testing.T) {
	var buf bytes.Buffer
	r := newTestEngine(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "caller-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "caller-id" {
		t.Fatalf("unexpected request id: %q", got)
	}
	if !strings.Contains(buf.String(), `"status":200`) {
		t.Fatalf("request log missing status: %q", buf.String())
	}
}
