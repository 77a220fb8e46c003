// Package prom exports sequence metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, _ := prom.NewCollector(reg, "myapp")
//	seq, _ := bigseq.New(ctx, 4096, bigseq.WithMetricsCollector(mc))
package prom

import (
	"time"

	"github.com/hupe1980/bigseq"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "bigseq"

// Collector implements bigseq.MetricsCollector on Prometheus metrics.
// It is safe to share between sequences.
type Collector struct {
	switches     *prometheus.CounterVec
	switchTime   prometheus.Histogram
	flushes      *prometheus.CounterVec
	flushedBytes prometheus.Counter
	loads        *prometheus.CounterVec
	loadedBytes  prometheus.Counter
	ioTime       *prometheus.HistogramVec
	moved        *prometheus.CounterVec
}

var _ bigseq.MetricsCollector = (*Collector)(nil)

// NewCollector creates the metrics under namespace and registers them with
// reg. A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		switches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "segment_switches_total",
			Help:      "Segment switches by result.",
		}, []string{"result"}),
		switchTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "segment_switch_duration_seconds",
			Help:      "Time spent writing back and reading segments.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		flushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "segment_flushes_total",
			Help:      "Segment write-backs by result.",
		}, []string{"result"}),
		flushedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "flushed_bytes_total",
			Help:      "Bytes written back to slot stores.",
		}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "segment_loads_total",
			Help:      "Segment loads by result (hit, miss or error).",
		}, []string{"result"}),
		loadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "loaded_bytes_total",
			Help:      "Bytes read from slot stores.",
		}),
		ioTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "slot_io_duration_seconds",
			Help:      "Latency of single slot reads and writes.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op"}),
		moved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "elements_moved_total",
			Help:      "Elements shifted by insert and remove.",
		}, []string{"op"}),
	}

	for _, m := range []prometheus.Collector{
		c.switches, c.switchTime, c.flushes, c.flushedBytes,
		c.loads, c.loadedBytes, c.ioTime, c.moved,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordSwitch implements bigseq.MetricsCollector.
func (c *Collector) RecordSwitch(d time.Duration, err error) {
	c.switches.WithLabelValues(result(err)).Inc()
	c.switchTime.Observe(d.Seconds())
}

// RecordFlush implements bigseq.MetricsCollector.
func (c *Collector) RecordFlush(bytes int, d time.Duration, err error) {
	c.flushes.WithLabelValues(result(err)).Inc()
	c.ioTime.WithLabelValues("write").Observe(d.Seconds())
	if err == nil {
		c.flushedBytes.Add(float64(bytes))
	}
}

// RecordLoad implements bigseq.MetricsCollector.
func (c *Collector) RecordLoad(bytes int, found bool, d time.Duration, err error) {
	c.ioTime.WithLabelValues("read").Observe(d.Seconds())
	switch {
	case err != nil:
		c.loads.WithLabelValues("error").Inc()
	case !found:
		c.loads.WithLabelValues("miss").Inc()
	default:
		c.loads.WithLabelValues("hit").Inc()
		c.loadedBytes.Add(float64(bytes))
	}
}

// RecordShift implements bigseq.MetricsCollector.
func (c *Collector) RecordShift(op string, moved int) {
	c.moved.WithLabelValues(op).Add(float64(moved))
}
