// Package metrics defines and registers the custom Prometheus metrics for
// the signalement API. It is the single source of truth for metric names,
// labels, and help strings. Metrics are registered with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "signalement"

// SignalementsCreatedTotal counts successfully recorded reports.
// Label:
//   - gravite: "low", "medium" or "high"
var SignalementsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of signalements recorded, by gravity.",
	},
	[]string{"gravite"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
