package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSMiddleware(t *testing.T) {
	newRouter := func(origins []string) *gin.Engine {
		router := gin.New()
		router.Use(CORSMiddleware(origins))
		router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		return router
	}

	t.Run("wildcard allows any origin", func(t *testing.T) {
		router := newRouter([]string{"*"})

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://anywhere.example" {
			t.Errorf("Allow-Origin = %q, want the request origin", got)
		}
	})

	t.Run("exact origin match", func(t *testing.T) {
		router := newRouter([]string{"https://app.example.com"})

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("Allow-Origin = %q, want exact origin", got)
		}
	})

	t.Run("disallowed origin gets no CORS headers", func(t *testing.T) {
		router := newRouter([]string{"https://app.example.com"})

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight requests short-circuit", func(t *testing.T) {
		router := newRouter([]string{"*"})

		req, _ := http.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Status = %d, want 204", w.Code)
		}
	})

	t.Run("prefix wildcard matching", func(t *testing.T) {
		if !isAllowedOrigin("chrome-extension://abcdef", []string{"chrome-extension://*"}) {
			t.Error("expected prefix wildcard to match")
		}
		if isAllowedOrigin("https://other.example", []string{"chrome-extension://*"}) {
			t.Error("expected non-matching origin to be rejected")
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(2))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	// Burst equals the per-minute limit, so the third immediate request
	// from the same IP must be rejected.
	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("first two statuses = %v, want 200s", statuses[:2])
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third status = %d, want 429", statuses[2])
	}

	t.Run("independent IPs are not affected", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want 200 for a fresh IP", w.Code)
		}
	})
}
