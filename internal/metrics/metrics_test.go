package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resetMu sync.Mutex

func withRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	resetMu.Lock()
	reg := prometheus.NewRegistry()
	previous := SetRegisterer(reg)
	t.Cleanup(func() {
		SetRegisterer(previous)
		resetMu.Unlock()
	})
	return reg
}

func TestRecordCountdowns(t *testing.T) {
	withRegistry(t)

	RecordProjection()
	RecordProjection()
	RecordCountdownStarted("min", 1)
	RecordCountdownStarted("max", 2)
	RecordCountdownFinished("min")
	RecordCountdownDeleted(1)

	assert.Equal(t, 2.0, testutil.ToFloat64(ProjectionsComputed))
	assert.Equal(t, 1.0, testutil.ToFloat64(CountdownsStarted.WithLabelValues("min")))
	assert.Equal(t, 1.0, testutil.ToFloat64(CountdownsStarted.WithLabelValues("max")))
	assert.Equal(t, 1.0, testutil.ToFloat64(CountdownsFinished.WithLabelValues("min")))
	assert.Equal(t, 1.0, testutil.ToFloat64(CountdownsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(CountdownsActive))
}

func TestRecordReset(t *testing.T) {
	withRegistry(t)

	RecordCountdownStarted("max", 1)
	RecordReset()

	assert.Equal(t, 1.0, testutil.ToFloat64(InputResets))
	assert.Equal(t, 0.0, testutil.ToFloat64(CountdownsActive))
}

func TestSetRegistererTwice(t *testing.T) {
	reg := withRegistry(t)

	before, err := reg.Gather()
	require.NoError(t, err)

	SetRegisterer(reg)
	after, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestSnapshot(t *testing.T) {
	reg := withRegistry(t)

	RecordProjection()
	RecordCountdownStarted("max", 1)

	samples, err := Snapshot(reg)
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, s := range samples {
		values[s.Name] = s.Value
	}
	assert.Equal(t, 1.0, values["arbeitszeit_projections_total"])
	assert.Equal(t, 1.0, values["arbeitszeit_countdowns_started_total{kind=max}"])
	assert.Equal(t, 1.0, values["arbeitszeit_countdowns_active"])
	assert.Contains(t, values, "arbeitszeit_countdowns_deleted_total")

	for i := 1; i < len(samples); i++ {
		assert.LessOrEqual(t, samples[i-1].Name, samples[i].Name)
	}
}

func TestLogArgs(t *testing.T) {
	args := LogArgs([]Sample{{Name: "a", Value: 1}, {Name: "b", Value: 2}})
	assert.Equal(t, []any{"a", 1.0, "b", 2.0}, args)
}
