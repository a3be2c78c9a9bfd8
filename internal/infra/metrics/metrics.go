// Package metrics holds the Prometheus collectors of the directory service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Geo search modes used as label values.
const (
	GeoModeRadius    = "radius"
	GeoModeRectangle = "rectangle"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "directory_http_requests_total",
		Help: "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "directory_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"route", "method"})
	GeoSearchCandidates = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "directory_geo_search_candidates",
		Help:    "Buildings returned by the bounding box pre-filter",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
	}, []string{"mode"})
	GeoSearchMatches = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "directory_geo_search_matches",
		Help:    "Buildings kept after the exact distance check",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
	}, []string{"mode"})
	DBOpenConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "directory_db_open_connections",
		Help: "Open connections in the database pool",
	})
	DBInUseConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "directory_db_in_use_connections",
		Help: "Database connections currently in use",
	})
	DBWaitTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "directory_db_wait_total",
		Help: "Times a query waited for a free pool connection",
	})
	ActivityClosureSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "directory_activity_closure_size",
		Help:    "Number of activity ids in a descendant closure",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationSeconds)
	prometheus.MustRegister(GeoSearchCandidates)
	prometheus.MustRegister(GeoSearchMatches)
	prometheus.MustRegister(ActivityClosureSize)
	prometheus.MustRegister(DBOpenConnections)
	prometheus.MustRegister(DBInUseConnections)
	prometheus.MustRegister(DBWaitTotal)
}

// ObserveGeoSearch records the pre-filter and exact result sizes of one search.
func ObserveGeoSearch(mode string, candidates, matches int) {
	GeoSearchCandidates.WithLabelValues(mode).Observe(float64(candidates))
	GeoSearchMatches.WithLabelValues(mode).Observe(float64(matches))
}

// ObserveDBPool records one sample of the database pool state.
func ObserveDBPool(open, inUse int, waitDelta int64) {
	DBOpenConnections.Set(float64(open))
	DBInUseConnections.Set(float64(inUse))
	if waitDelta > 0 {
		DBWaitTotal.Add(float64(waitDelta))
	}
}

// ObserveHTTPRequest records one served request. The latency keeps its
// sub-millisecond part.
func ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler { return promhttp.Handler() }
