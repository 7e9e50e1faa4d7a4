package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()
	Init()

	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	before := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ping", "200"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ping", "200")))
}

func TestPrometheusHandlerExposesDomainCounters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()
	CertificatesIssued.WithLabelValues("self").Inc()

	r := gin.New()
	r.GET("/metrics", PrometheusHandler())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "educonexa_certificates_issued_total")
}
