package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Push sends every metric of gatherer to the Pushgateway at url under job.
// A nil gatherer pushes the default registry.
func Push(ctx context.Context, url, job string, gatherer prometheus.Gatherer) error {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if job == "" {
		job = "subtitler"
	}
	return push.New(url, job).Gatherer(gatherer).PushContext(ctx)
}
