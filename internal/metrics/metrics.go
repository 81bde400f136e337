// Package metrics holds the Prometheus collectors of the backup workflow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records backup, restore and schedule outcomes. A nil *Metrics
// records nothing.
type Metrics struct {
	backups       *prometheus.CounterVec
	restores      *prometheus.CounterVec
	scheduledRuns *prometheus.CounterVec
	pruned        prometheus.Counter
	backupSize    prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		backups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backups_total",
				Help: "Backups attempted, by type, storage target and final status.",
			},
			[]string{"type", "storage", "status"},
		),
		restores: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backup_restores_total",
				Help: "Backup restores, by final status.",
			},
			[]string{"status"},
		),
		scheduledRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduled_backups_total",
				Help: "Scheduled backup runs, by final status.",
			},
			[]string{"status"},
		),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backups_pruned_total",
			Help: "Backups deleted after their retention expired.",
		}),
		backupSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "backup_size_bytes",
			Help:    "Size of the JSON payload of completed backups.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.backups, m.restores, m.scheduledRuns, m.pruned, m.backupSize} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveBackup counts a backup attempt; size is recorded for completed backups only.
func (m *Metrics) ObserveBackup(backupType, storage, status string, size int64) {
	if m == nil {
		return
	}
	m.backups.WithLabelValues(backupType, storage, status).Inc()
	if status == "completed" {
		m.backupSize.Observe(float64(size))
	}
}

func (m *Metrics) ObserveRestore(status string) {
	if m == nil {
		return
	}
	m.restores.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveScheduledRun(status string) {
	if m == nil {
		return
	}
	m.scheduledRuns.WithLabelValues(status).Inc()
}

func (m *Metrics) AddPruned(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.pruned.Add(float64(n))
}
