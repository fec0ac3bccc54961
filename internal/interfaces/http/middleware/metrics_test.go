package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsRouter(t *testing.T) (*gin.Engine, *HTTPMetrics) {
	t.Helper()

	m, err := NewHTTPMetrics()
	require.NoError(t, err)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/produtos/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.DELETE("/produtos/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))
	return router, m
}

func TestHTTPMetrics_CountsByRoutePattern(t *testing.T) {
	router, m := newMetricsRouter(t)

	for _, id := range []string{"1", "2", "3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/produtos/"+id, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/produtos/9", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/produtos/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("DELETE", "/produtos/:id", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requestDuration))
	assert.Zero(t, testutil.ToFloat64(m.inflight.WithLabelValues("GET", "/produtos/:id")))
}

func TestHTTPMetrics_UnmatchedRoute(t *testing.T) {
	router, m := newMetricsRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/random/path/123", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/other", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", unmatchedRoute, "404")))
}

func TestHTTPMetrics_Handler(t *testing.T) {
	router, _ := newMetricsRouter(t)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/produtos/1", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/produtos/:id",status="200"} 1`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestNewHTTPMetrics_Independent(t *testing.T) {
	_, err := NewHTTPMetrics()
	require.NoError(t, err)
	_, err = NewHTTPMetrics()
	assert.NoError(t, err, "each instance owns its registry")
}
