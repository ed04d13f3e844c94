package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/moto-pile/site/async"
)

var (
	// contentRefreshes counts finished content loads by outcome
	contentRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moto_content_refresh_total",
			Help: "Content loads by outcome (success, error, discarded, throttled)",
		},
		[]string{"outcome"},
	)

	// contentLoaderStatus mirrors the loader's lifecycle status
	contentLoaderStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moto_content_loader_status",
			Help: "Content loader status: 0 idle, 1 pending, 2 success, 3 error",
		},
	)

	// contentLoadedAt is when the served snapshot was loaded
	contentLoadedAt = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moto_content_loaded_timestamp_seconds",
			Help: "Unix time of the content snapshot being served",
		},
	)
)

// Refresh outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeError     = "error"
	OutcomeDiscarded = "discarded"
	OutcomeThrottled = "throttled"
)

// ContentRefresh records the outcome of one content load
func ContentRefresh(outcome string) {
	contentRefreshes.WithLabelValues(outcome).Inc()
}

// ContentStatus records a loader transition
func ContentStatus(s async.Status) {
	contentLoaderStatus.Set(StatusValue(s))
}

// ContentLoaded records when the served snapshot was read from the database
func ContentLoaded(unixSeconds int64) {
	contentLoadedAt.Set(float64(unixSeconds))
}

// StatusValue maps a status to its gauge value
func StatusValue(s async.Status) float64 {
	switch s {
	case async.StatusPending:
		return 1
	case async.StatusSuccess:
		return 2
	case async.StatusError:
		return 3
	default:
		return 0
	}
}
