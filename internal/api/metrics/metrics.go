// Package metrics defines the custom Prometheus metrics for the travel API.
// It is the single source of truth for metric names, labels, and help strings;
// collectors register themselves with the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts access-guard outcomes on protected routes.
// Label:
//   - outcome: "allowed", "missing_token", "malformed", "bad_signature", "expired"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of access-guard decisions, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "invalid_input"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate_email", "invalid_input"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// DestinationMutationsTotal counts catalog writes.
// Labels:
//   - action: "add" or "delete"
//   - result: "success", "invalid_input", "not_found"
var DestinationMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "destination_mutations_total",
		Help:      "Total number of destination catalog mutations, by action and result.",
	},
	[]string{"action", "result"},
)
