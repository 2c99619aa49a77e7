package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Collector counts session activity in a private registry. A nil *Collector
// is valid and records nothing.
type Collector struct {
	registry   *prometheus.Registry
	added      *prometheus.CounterVec
	rejections *prometheus.CounterVec
	reports    prometheus.Counter
	exports    *prometheus.CounterVec
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		added: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payroll_employees_added_total",
			Help: "Employees added to the registry, by kind.",
		}, []string{"kind"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payroll_input_rejections_total",
			Help: "Operator inputs rejected by validation, by reason.",
		}, []string{"reason"}),
		reports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "payroll_reports_rendered_total",
			Help: "Payroll reports displayed.",
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payroll_exports_total",
			Help: "Report export files written, by format.",
		}, []string{"format"}),
	}
	c.registry.MustRegister(c.added, c.rejections, c.reports, c.exports)
	return c
}

func (c *Collector) RecordAdded(kind string) {
	if c == nil {
		return
	}
	c.added.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordRejection(reason string) {
	if c == nil {
		return
	}
	c.rejections.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordReport() {
	if c == nil {
		return
	}
	c.reports.Inc()
}

func (c *Collector) RecordExport(format string) {
	if c == nil {
		return
	}
	c.exports.WithLabelValues(format).Inc()
}

// Snapshot flattens every series into "name{label=value}" keys.
func (c *Collector) Snapshot() map[string]float64 {
	out := map[string]float64{}
	if c == nil {
		return out
	}
	families, err := c.registry.Gather()
	if err != nil {
		return out
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			out[seriesName(family.GetName(), metric)] = metric.GetCounter().GetValue()
		}
	}
	return out
}

func seriesName(name string, metric *dto.Metric) string {
	for _, label := range metric.GetLabel() {
		name += "{" + label.GetName() + "=" + label.GetValue() + "}"
	}
	return name
}
