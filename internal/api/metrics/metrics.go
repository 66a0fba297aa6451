// Package metrics defines and registers all custom Prometheus metrics for
// the reservation system. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reservations"

// ── Reservation CRUD metrics ─────────────────────────────────────────────────

// CreatedTotal counts reservations created successfully.
var CreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of reservations created.",
	},
)

// UpdatedTotal counts reservations updated successfully.
var UpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updated_total",
		Help:      "Total number of reservations updated.",
	},
)

// DeletedTotal counts reservations deleted successfully.
var DeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of reservations deleted.",
	},
)

// ValidationFailuresTotal counts rejected create/update submissions.
// Label:
//   - field: the first field that failed validation (e.g. "date", "guests")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of reservation submissions rejected by validation, by field.",
	},
	[]string{"field"},
)

// ── Activity trail metrics ───────────────────────────────────────────────────

// ActivityProcessedTotal counts activity events persisted successfully.
// Label:
//   - action: "created", "updated", or "deleted"
var ActivityProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_processed_total",
		Help:      "Total number of activity events successfully persisted.",
	},
	[]string{"action"},
)

// ActivityErrorsTotal counts activity events that were dropped or failed.
// Label:
//   - reason: "queue_full", "process_failed", or "stopped"
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity events dropped or failed, by reason.",
	},
	[]string{"reason"},
)

// ActivityQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityProcessingDuration measures how long one activity event takes to persist.
// Label:
//   - action: "created", "updated", or "deleted"
var ActivityProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_processing_duration_seconds",
		Help:      "Duration of activity event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"action"},
)
