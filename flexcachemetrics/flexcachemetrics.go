// Package flexcachemetrics adapts a flexcache.Cache's Stats snapshot to
// a prometheus.Collector, so a cache can be registered directly with a
// prometheus.Registry at the edge of an application without the core
// engine importing the metrics stack itself.
package flexcachemetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bellirodrigo2/flexcache"
)

// StatsSource is satisfied by *flexcache.Cache and by
// *flexsync.SynchronizedCache, so a Collector can front either a bare
// single-goroutine cache or a synchronized one.
type StatsSource interface {
	Stats() flexcache.Stats
	Len() int
	Bytes() int64
}

// Collector exports a cache's counters and gauges under a configurable
// metric name prefix.
type Collector struct {
	source StatsSource

	hitsDesc        *prometheus.Desc
	missesDesc      *prometheus.Desc
	evictionsDesc   *prometheus.Desc
	expirationsDesc *prometheus.Desc
	itemsDesc       *prometheus.Desc
	bytesDesc       *prometheus.Desc
	hitRatioDesc    *prometheus.Desc
}

// NewCollector builds a Collector for source, naming its metrics
// "<namespace>_cache_<metric>".
func NewCollector(namespace string, source StatsSource) *Collector {
	label := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", name),
			help, nil, nil,
		)
	}
	return &Collector{
		source:          source,
		hitsDesc:        label("hits_total", "Total Get calls resolved as a hit."),
		missesDesc:      label("misses_total", "Total Get calls resolved as a miss."),
		evictionsDesc:   label("evictions_total", "Total entries removed by capacity eviction."),
		expirationsDesc: label("expirations_total", "Total entries removed because their TTL elapsed."),
		itemsDesc:       label("items", "Current resident item count."),
		bytesDesc:       label("bytes", "Current accounted byte size."),
		hitRatioDesc:    label("hit_ratio", "Hits divided by hits plus misses."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hitsDesc
	ch <- c.missesDesc
	ch <- c.evictionsDesc
	ch <- c.expirationsDesc
	ch <- c.itemsDesc
	ch <- c.bytesDesc
	ch <- c.hitRatioDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.hitsDesc, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.missesDesc, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictionsDesc, prometheus.CounterValue, float64(stats.Evictions))
	ch <- prometheus.MustNewConstMetric(c.expirationsDesc, prometheus.CounterValue, float64(stats.Expirations))
	ch <- prometheus.MustNewConstMetric(c.itemsDesc, prometheus.GaugeValue, float64(c.source.Len()))
	ch <- prometheus.MustNewConstMetric(c.bytesDesc, prometheus.GaugeValue, float64(c.source.Bytes()))
	ch <- prometheus.MustNewConstMetric(c.hitRatioDesc, prometheus.GaugeValue, stats.HitRatio())
}
