//nolint:gochecknoglobals
package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultDelivered  = "delivered"
	resultFailed     = "failed"
	resultSkipped    = "skipped"
	resultStoreError = "store_error"
)

var (
	stageAttemptsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "opsbot",
		Name:      "stage_attempts",
		Help:      "Reminder stages processed, by stage and result",
	}, []string{"stage", "result"})

	directRemindersMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "opsbot",
		Name:      "direct_reminders",
		Help:      "Direct reminders sent to participants who are going",
	}, []string{"result"})

	reminderTasksMetric = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "opsbot",
		Name:      "reminder_tasks",
		Help:      "Reminder tasks currently waiting for their next stage",
	})

	dailyBroadcastsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "opsbot",
		Name:      "daily_broadcasts",
		Help:      "Daily broadcasts processed, by family and result",
	}, []string{"family", "result"})

	rsvpSignalsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "opsbot",
		Name:      "rsvp_signals",
		Help:      "RSVP join and leave signals applied",
	}, []string{"kind"})
)
