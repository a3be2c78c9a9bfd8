package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestObserveGeoSearch(t *testing.T) {
	ObserveGeoSearch(GeoModeRadius, 10, 7)
	ObserveGeoSearch(GeoModeRectangle, 3, 3)

	body := scrape(t)
	assert.Contains(t, body, `directory_geo_search_candidates_count{mode="radius"}`)
	assert.Contains(t, body, `directory_geo_search_matches_count{mode="rectangle"}`)
}

func TestHandler(t *testing.T) {
	HTTPRequestsTotal.WithLabelValues("/api/v1/buildings", http.MethodGet, "200").Inc()

	assert.Contains(t, scrape(t), "directory_http_requests_total")
}

func TestObserveDBPool(t *testing.T) {
	ObserveDBPool(4, 2, 3)
	ObserveDBPool(5, 1, 0)

	body := scrape(t)
	assert.Contains(t, body, "directory_db_open_connections 5")
	assert.Contains(t, body, "directory_db_in_use_connections 1")
	assert.Contains(t, body, "directory_db_wait_total 3")
}

func TestObserveHTTPRequest_KeepsSubMillisecondLatency(t *testing.T) {
	ObserveHTTPRequest("/api/v1/latency", http.MethodGet, http.StatusOK, 300*time.Microsecond)

	body := scrape(t)
	assert.Contains(t, body, `directory_http_requests_total{method="GET",route="/api/v1/latency",status="200"} 1`)
	assert.Contains(t, body, `directory_http_request_duration_seconds_bucket{method="GET",route="/api/v1/latency",le="0.0001"} 0`)
	assert.Contains(t, body, `directory_http_request_duration_seconds_bucket{method="GET",route="/api/v1/latency",le="0.0005"} 1`)
	assert.Contains(t, body, `directory_http_request_duration_seconds_sum{method="GET",route="/api/v1/latency"} 0.0003`)
}
