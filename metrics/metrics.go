// Package metrics instruments schemas with Prometheus counters and a parse
// latency histogram.
//
//	c := metrics.NewCollector("myapp")
//	prometheus.MustRegister(c)
//	user := c.Wrap(userSchema)
//	v, err := user.ParseAny(ctx, input)
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeInternal = "internal"
)

// Collector holds the metric vectors shared by every wrapped schema. It is a
// prometheus.Collector; register it once.
type Collector struct {
	parses   *prometheus.CounterVec
	issues   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates the vectors under namespace ("" for none).
func NewCollector(namespace string) *Collector {
	return &Collector{
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parses_total",
			Help:      "Parse calls by schema and outcome.",
		}, []string{"schema", "outcome"}),
		issues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issues_total",
			Help:      "Validation issues by schema and issue code.",
		}, []string{"schema", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Parse latency by schema.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"schema"}),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.parses.Describe(ch)
	c.issues.Describe(ch)
	c.duration.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.parses.Collect(ch)
	c.issues.Collect(ch)
	c.duration.Collect(ch)
}

// Wrap returns p instrumented under its own name.
func (c *Collector) Wrap(p skema.Parser) skema.Parser {
	return c.WrapNamed(p.Name(), p)
}

// WrapNamed returns p instrumented under the given label, for callers that
// hold several schemas sharing a base name.
func (c *Collector) WrapNamed(label string, p skema.Parser) skema.Parser {
	return &instrumented{inner: p, label: label, c: c}
}

// Observe records one parse result. Wrapped schemas call it; it is exported
// for typed call sites that use Schema.Parse directly.
func (c *Collector) Observe(label string, elapsed time.Duration, err error) {
	outcome := Outcome(err)
	c.parses.WithLabelValues(label, outcome).Inc()
	c.duration.WithLabelValues(label).Observe(elapsed.Seconds())
	if iss, ok := skema.AsIssues(err); ok {
		for _, it := range iss {
			c.issues.WithLabelValues(label, it.Code).Inc()
		}
	}
}

// Outcome classifies a parse error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case skema.IsInternal(err):
		return OutcomeInternal
	default:
		var iss skema.Issues
		if errors.As(err, &iss) {
			return OutcomeInvalid
		}
		return OutcomeInternal
	}
}

type instrumented struct {
	inner skema.Parser
	label string
	c     *Collector
}

func (w *instrumented) Name() string { return w.inner.Name() }

func (w *instrumented) ParseAny(ctx context.Context, v any) (any, error) {
	start := time.Now()
	out, err := w.inner.ParseAny(ctx, v)
	w.c.Observe(w.label, time.Since(start), err)
	return out, err
}

func (w *instrumented) JSONSchema() (*js.Schema, error) { return w.inner.JSONSchema() }
