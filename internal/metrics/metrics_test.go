package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObserveBackup("full", "both", "completed", 2048)
	m.ObserveBackup("full", "both", "failed", 0)
	m.ObserveRestore("completed")
	m.ObserveScheduledRun("failed")
	m.AddPruned(3)
	m.AddPruned(0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.backups.WithLabelValues("full", "both", "completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backups.WithLabelValues("full", "both", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.restores.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scheduledRuns.WithLabelValues("failed")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.pruned))
	assert.Equal(t, 1, testutil.CollectAndCount(m.backupSize))
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveBackup("full", "cloud", "completed", 1)
		m.ObserveRestore("failed")
		m.ObserveScheduledRun("completed")
		m.AddPruned(1)
	})
}
