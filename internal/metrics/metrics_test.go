package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareRecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewServerMetrics("")

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/products/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/products/1", "/products/2", "/missing"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.Requests.WithLabelValues("/products/:id", http.MethodGet, "200")); got != 2 {
		t.Fatalf("route counter want 2 got %v", got)
	}
	if got := testutil.ToFloat64(m.Requests.WithLabelValues("unmatched", http.MethodGet, "404")); got != 1 {
		t.Fatalf("unmatched counter want 1 got %v", got)
	}
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := NewServerMetrics("shop_test")
	m.IncRateLimited("login")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `shop_test_rate_limited_total{rule="login"} 1`) {
		t.Fatalf("rate limited counter missing from scrape output")
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *ServerMetrics
	m.IncRateLimited("login")
}
