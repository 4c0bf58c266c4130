package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds.
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// StatusCategoryCounter aggregates responses by status class.
	StatusCategoryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"service", "category", "method", "path"},
	)
)

// HTTPMetrics collects request metrics for one named service.
type HTTPMetrics struct {
	ServiceName string
	initialized bool
}

func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	m := &HTTPMetrics{
		ServiceName: serviceName,
	}
	m.register()
	return m
}

func (m *HTTPMetrics) register() {
	if m.initialized {
		return
	}
	// Registration tolerates duplicates so building more than one engine
	// (as the test harness does) is safe.
	for _, collector := range []prometheus.Collector{
		RequestCounter, RequestDurationHistogram, StatusCategoryCounter,
	} {
		if err := prometheus.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}
	m.initialized = true
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return ""
}

// Middleware records counter, category and duration for every request.
// Uses the route template (c.FullPath) rather than the raw URL so path
// parameters don't explode label cardinality.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusStr := strconv.Itoa(status)

		RequestCounter.WithLabelValues(m.ServiceName, method, path, statusStr).Inc()
		if category := statusCategory(status); category != "" {
			StatusCategoryCounter.WithLabelValues(m.ServiceName, category, method, path).Inc()
		}
		RequestDurationHistogram.WithLabelValues(m.ServiceName, method, path, statusStr).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
