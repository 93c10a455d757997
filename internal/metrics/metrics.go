// Package metrics exposes genome load figures as Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"refgenome-core/genome"
)

const namespace = "refgenome"

// Load tracks genome loads.
type Load struct {
	Records     prometheus.Gauge
	Bases       prometheus.Gauge
	HeaderLines prometheus.Gauge
	DataLines   prometheus.Gauge
	Duration    prometheus.Histogram
	Failures    prometheus.Counter
}

// NewLoad creates the collectors and registers them with reg.
func NewLoad(reg prometheus.Registerer) *Load {
	m := &Load{
		Records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "records",
			Help: "Records indexed by the last successful load.",
		}),
		Bases: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "condensed_bytes",
			Help: "Length of the condensed sequence buffer.",
		}),
		HeaderLines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "header_lines",
			Help: "Header lines seen by the last successful load.",
		}),
		DataLines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "data_lines",
			Help: "Sequence lines seen by the last successful load.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "load_duration_seconds",
			Help:    "Wall time spent reading and indexing a genome.",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
		Failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "load_failures_total",
			Help: "Loads that ended in an error.",
		}),
	}
	reg.MustRegister(m.Records, m.Bases, m.HeaderLines, m.DataLines, m.Duration, m.Failures)
	return m
}

// Observe records one load. g is ignored when err is non-nil.
func (m *Load) Observe(g *genome.Genome, elapsed time.Duration, err error) {
	m.Duration.Observe(elapsed.Seconds())
	if err != nil || g == nil {
		m.Failures.Inc()
		return
	}
	st := g.Stats()
	m.Records.Set(float64(st.Records))
	m.Bases.Set(float64(st.Bases))
	m.HeaderLines.Set(float64(st.HeaderLines))
	m.DataLines.Set(float64(st.DataLines))
}

// WriteTextfile dumps everything gathered by g in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
