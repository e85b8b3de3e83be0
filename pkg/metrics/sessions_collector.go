package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/4kternos/fitting-room/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type sessionStatsCollector struct {
	store        store.Store
	now          func() time.Time
	activeTotal  *prometheus.Desc
	scrapeErrors prometheus.Counter
}

// RegisterSessionCollector exposes the number of live fitting sessions, read from the store at scrape time.
func RegisterSessionCollector(s store.Store) {
	prometheus.MustRegister(newSessionStatsCollector(s))
}

func newSessionStatsCollector(s store.Store) *sessionStatsCollector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_sessions_%s", fittingRoom, name)
	}

	return &sessionStatsCollector{
		store: s,
		now:   func() time.Time { return time.Now().UTC() },
		activeTotal: prometheus.NewDesc(
			fqName("active_total"),
			"Total number of fitting sessions not yet expired.",
			nil,
			prometheus.Labels{},
		),
		scrapeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: fqName("scrape_errors_total"),
			Help: "Number of failed attempts to read session statistics.",
		}),
	}
}

func (c *sessionStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.activeTotal
	c.scrapeErrors.Describe(ch)
}

// Collect implements Collector.
func (c *sessionStatsCollector) Collect(ch chan<- prometheus.Metric) {
	defer c.scrapeErrors.Collect(ch)

	active, err := c.store.Session().CountActive(context.Background(), c.now())
	if err != nil {
		c.scrapeErrors.Inc()
		zap.S().Named("sessions_collector").Errorf("failed to collect session statistics: %s", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.activeTotal, prometheus.GaugeValue, float64(active))
}
