// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/socialfeed-server/internal/model"
)

var _ model.MetricsRecorder = (*Collector)(nil)

const (
	followActionFollow   = "follow"
	followActionUnfollow = "unfollow"
)

// Collector records domain and transport metrics.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	follows      *prometheus.CounterVec
	postsCreated *prometheus.CounterVec
	authAttempts *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "socialfeed_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "socialfeed_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		follows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "socialfeed_follows_total",
			Help: "Follow graph mutations by action.",
		}, []string{"action"}),
		postsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "socialfeed_posts_created_total",
			Help: "Created posts, split by media attachment.",
		}, []string{"media"}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "socialfeed_auth_attempts_total",
			Help: "Register and login attempts by result.",
		}, []string{"action", "result"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.follows,
		c.postsCreated,
		c.authAttempts,
	)

	return c
}

// RecordHTTPRequest records a served request. route is the matched pattern,
// never the raw path, to keep label cardinality bounded.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordFollow() {
	c.follows.WithLabelValues(followActionFollow).Inc()
}

func (c *Collector) RecordUnfollow() {
	c.follows.WithLabelValues(followActionUnfollow).Inc()
}

func (c *Collector) RecordPostCreated(withMedia bool) {
	c.postsCreated.WithLabelValues(strconv.FormatBool(withMedia)).Inc()
}

func (c *Collector) RecordAuthAttempt(action string, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.authAttempts.WithLabelValues(action, result).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every recorded event.
type Nop struct{}

var _ model.MetricsRecorder = Nop{}

func (Nop) RecordFollow()                  {}
func (Nop) RecordUnfollow()                {}
func (Nop) RecordPostCreated(bool)         {}
func (Nop) RecordAuthAttempt(string, bool) {}
