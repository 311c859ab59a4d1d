// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "github.com/prometheus/client_golang/prometheus"

// managerCollector exposes the manager's node and cache counters as
// Prometheus gauges, alongside the human-readable Stats() string (§4.12
// expansion).
type managerCollector struct {
	m *Manager

	nodesLive   *prometheus.Desc
	nodesDead   *prometheus.Desc
	gcTotal     *prometheus.Desc
	cacheRatio  *prometheus.Desc
}

// Metrics returns a prometheus.Collector a host process can register to
// scrape this manager's live-node count, dead-node count, GC count, and
// cache hit ratio.
func (m *Manager) Metrics() prometheus.Collector {
	return &managerCollector{
		m:          m,
		nodesLive:  prometheus.NewDesc("dd_nodes_live", "Live nodes in the arena.", nil, nil),
		nodesDead:  prometheus.NewDesc("dd_nodes_dead", "Nodes pending the next GC pass.", nil, nil),
		gcTotal:    prometheus.NewDesc("dd_gc_total", "Number of GC passes run.", nil, nil),
		cacheRatio: prometheus.NewDesc("dd_cache_hit_ratio", "Memoization cache hit ratio.", []string{"cache"}, nil),
	}
}

func (c *managerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodesLive
	ch <- c.nodesDead
	ch <- c.gcTotal
	ch <- c.cacheRatio
}

func (c *managerCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.nodesLive, prometheus.GaugeValue, float64(c.m.store.live()))
	ch <- prometheus.MustNewConstMetric(c.nodesDead, prometheus.GaugeValue, float64(c.m.deadCount))
	ch <- prometheus.MustNewConstMetric(c.gcTotal, prometheus.GaugeValue, float64(c.m.gcCount))
	ch <- prometheus.MustNewConstMetric(c.cacheRatio, prometheus.GaugeValue, c.m.cache.ratio(), "shared")
}
