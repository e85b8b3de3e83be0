package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	fittingRoom = "fitting_room"

	// Recommendation metrics
	recommendationsTotal = "recommendations_total"

	// Session metrics
	sessionEventsTotal = "session_events_total"

	// Labels
	jacketSizeLabel   = "jacket"
	sessionEventLabel = "event"
)

const (
	SessionCreated = "created"
	SessionUpdated = "updated"
	SessionDeleted = "deleted"
	SessionExpired = "expired"
)

var recommendationsTotalLabels = []string{
	jacketSizeLabel,
}

var sessionEventsTotalLabels = []string{
	sessionEventLabel,
}

/**
* Metrics definition
**/
var recommendationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: fittingRoom,
		Name:      recommendationsTotal,
		Help:      "number of suit recommendations partitioned by jacket size",
	},
	recommendationsTotalLabels,
)

var sessionEventsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: fittingRoom,
		Name:      sessionEventsTotal,
		Help:      "number of fitting session lifecycle events",
	},
	sessionEventsTotalLabels,
)

func IncreaseRecommendationsTotalMetric(jacket int) {
	labels := prometheus.Labels{
		jacketSizeLabel: strconv.Itoa(jacket),
	}
	recommendationsTotalMetric.With(labels).Inc()
}

func IncreaseSessionEventsTotalMetric(event string, count int) {
	if count <= 0 {
		return
	}
	labels := prometheus.Labels{
		sessionEventLabel: event,
	}
	sessionEventsTotalMetric.With(labels).Add(float64(count))
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(recommendationsTotalMetric)
	prometheus.MustRegister(sessionEventsTotalMetric)
	prometheus.MustRegister(totalUniqueVisitPerWeekMetric)
}
