// Package metrics records in-process Prometheus counters for projections
// and countdowns. Nothing is served over the network; the values are
// gathered into the debug log when a command exits.
package metrics

import (
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

var (
	ProjectionsComputed prometheus.Counter
	CountdownsStarted   *prometheus.CounterVec
	CountdownsFinished  *prometheus.CounterVec
	CountdownsDeleted   prometheus.Counter
	CountdownsActive    prometheus.Gauge
	InputResets         prometheus.Counter

	metricsMu         sync.RWMutex
	currentRegisterer prometheus.Registerer = prometheus.DefaultRegisterer
	collectors        []prometheus.Collector
)

func init() {
	SetRegisterer(prometheus.DefaultRegisterer)
}

// SetRegisterer moves every collector to registerer and returns the
// previous one so tests can restore it.
func SetRegisterer(registerer prometheus.Registerer) prometheus.Registerer {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	previous := currentRegisterer
	if currentRegisterer != nil {
		for _, c := range collectors {
			currentRegisterer.Unregister(c)
		}
	}
	currentRegisterer = registerer
	initializeMetrics(registerer)
	return previous
}

// initializeMetrics must be called while holding metricsMu.
func initializeMetrics(registerer prometheus.Registerer) {
	factory := promauto.With(registerer)

	ProjectionsComputed = factory.NewCounter(prometheus.CounterOpts{
		Name: "arbeitszeit_projections_total",
		Help: "Number of end time projections computed",
	})
	CountdownsStarted = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "arbeitszeit_countdowns_started_total",
		Help: "Number of countdowns started by threshold kind",
	}, []string{"kind"})
	CountdownsFinished = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "arbeitszeit_countdowns_finished_total",
		Help: "Number of countdowns that reached zero by threshold kind",
	}, []string{"kind"})
	CountdownsDeleted = factory.NewCounter(prometheus.CounterOpts{
		Name: "arbeitszeit_countdowns_deleted_total",
		Help: "Number of countdowns removed by the user",
	})
	CountdownsActive = factory.NewGauge(prometheus.GaugeOpts{
		Name: "arbeitszeit_countdowns_active",
		Help: "Number of countdowns currently held",
	})
	InputResets = factory.NewCounter(prometheus.CounterOpts{
		Name: "arbeitszeit_input_resets_total",
		Help: "Number of times the start time was cleared",
	})

	collectors = []prometheus.Collector{
		ProjectionsComputed,
		CountdownsStarted,
		CountdownsFinished,
		CountdownsDeleted,
		CountdownsActive,
		InputResets,
	}
}

// RecordProjection counts one computed projection.
func RecordProjection() {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	ProjectionsComputed.Inc()
}

// RecordCountdownStarted counts a new countdown and updates the active gauge.
func RecordCountdownStarted(kind string, active int) {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	CountdownsStarted.WithLabelValues(kind).Inc()
	CountdownsActive.Set(float64(active))
}

// RecordCountdownFinished counts a countdown reaching zero.
func RecordCountdownFinished(kind string) {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	CountdownsFinished.WithLabelValues(kind).Inc()
}

// RecordCountdownDeleted counts a removal and updates the active gauge.
func RecordCountdownDeleted(active int) {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	CountdownsDeleted.Inc()
	CountdownsActive.Set(float64(active))
}

// RecordReset counts a cleared input; every countdown is gone afterwards.
func RecordReset() {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	InputResets.Inc()
	CountdownsActive.Set(0)
}

// Sample is one gathered metric value.
type Sample struct {
	Name  string
	Value float64
}

// Snapshot gathers every arbeitszeit metric from g, sorted by name.
// Labelled series are named like "name{kind=max}". Zero-valued series are
// included.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, fam := range families {
		if !strings.HasPrefix(fam.GetName(), "arbeitszeit_") {
			continue
		}
		for _, m := range fam.GetMetric() {
			samples = append(samples, Sample{
				Name:  seriesName(fam.GetName(), m.GetLabel()),
				Value: metricValue(fam.GetType(), m),
			})
		}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples, nil
}

func seriesName(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.GetName()+"="+l.GetValue())
	}
	return name + "{" + strings.Join(parts, ",") + "}"
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return 0
	}
}

// LogArgs flattens samples into slog key/value pairs.
func LogArgs(samples []Sample) []any {
	args := make([]any, 0, 2*len(samples))
	for _, s := range samples {
		args = append(args, s.Name, s.Value)
	}
	return args
}
