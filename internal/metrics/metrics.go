// Package metrics collects the counters of one batch run and writes them in
// the Prometheus text format.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is what the client, the cache and the services report to.
type Recorder interface {
	RecordAPIResponse(endpoint string, statusCode int, duration time.Duration)
	RecordCacheHit()
	RecordCacheMiss()
	RecordCacheRepair()
	RecordRowPriced()
	RecordRowUnpriced()
	RecordRowFailed()
	RecordShortageRetry()
	RecordPriceUpdates(count int)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	apiResponses  *prometheus.CounterVec
	apiLatency    *prometheus.HistogramVec
	cacheLookups  *prometheus.CounterVec
	rows          *prometheus.CounterVec
	shortageRetry prometheus.Counter
	priceUpdates  prometheus.Counter
}

// NewCollector registers the run metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		apiResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mpu_api_responses_total",
			Help: "Marketplace API responses by endpoint and status code.",
		}, []string{"endpoint", "status_code"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mpu_api_latency_seconds",
			Help:    "Marketplace API call latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mpu_market_extract_lookups_total",
			Help: "Market extract cache lookups by result.",
		}, []string{"result"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mpu_rows_total",
			Help: "Stock rows processed by outcome.",
		}, []string{"outcome"}),
		shortageRetry: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mpu_shortage_retries_total",
			Help: "Rows retried with a widened sample.",
		}),
		priceUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mpu_price_updates_total",
			Help: "Price updates written to the marketplace.",
		}),
	}

	reg.MustRegister(
		c.apiResponses,
		c.apiLatency,
		c.cacheLookups,
		c.rows,
		c.shortageRetry,
		c.priceUpdates,
	)

	return c
}

func (c *Collector) RecordAPIResponse(endpoint string, statusCode int, duration time.Duration) {
	c.apiResponses.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
	c.apiLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (c *Collector) RecordCacheHit() {
	c.cacheLookups.WithLabelValues("hit").Inc()
}

func (c *Collector) RecordCacheMiss() {
	c.cacheLookups.WithLabelValues("miss").Inc()
}

func (c *Collector) RecordCacheRepair() {
	c.cacheLookups.WithLabelValues("repair").Inc()
}

func (c *Collector) RecordRowPriced() {
	c.rows.WithLabelValues("priced").Inc()
}

func (c *Collector) RecordRowUnpriced() {
	c.rows.WithLabelValues("unpriced").Inc()
}

func (c *Collector) RecordRowFailed() {
	c.rows.WithLabelValues("failed").Inc()
}

func (c *Collector) RecordShortageRetry() {
	c.shortageRetry.Inc()
}

func (c *Collector) RecordPriceUpdates(count int) {
	c.priceUpdates.Add(float64(count))
}

// WriteTextfile dumps everything gathered by g to path, in the format read by
// the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
