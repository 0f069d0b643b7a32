package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Fetch results used as the "result" label of SubtitleFetchesTotal
const (
	ResultSuccess          = "success"
	ResultClientError      = "client_error"
	ResultFingerprintError = "fingerprint_error"
	ResultEmpty            = "empty"
	ResultDownloadError    = "download_error"
	ResultUnzipError       = "unzip_error"
	ResultWriteError       = "write_error"
)

// Subtitle fetch metrics
var (
	SubtitleFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_fetches_total",
			Help: "Total number of subtitle fetches by result.",
		},
		[]string{"result"},
	)
)

// Catalog RPC metrics
var (
	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of catalog remote procedure calls.",
		},
		[]string{"method", "result"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog remote procedure calls.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(
		SubtitleFetchesTotal,
		CatalogRequestsTotal,
		CatalogRequestDuration,
	)
}
