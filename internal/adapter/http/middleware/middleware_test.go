package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine()

	t.Run("generates id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		got := w.Header().Get(HeaderRequestID)
		if got == "" || w.Body.String() != got {
			t.Fatalf("expected generated id echoed, header=%q body=%q", got, w.Body.String())
		}
	})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get(HeaderRequestID) != "req-123" || w.Body.String() != "req-123" {
			t.Fatalf("expected caller id, got header=%q body=%q", w.Header().Get(HeaderRequestID), w.Body.String())
		}
	})
}

func TestRecovery(t *testing.T) {
	r := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
