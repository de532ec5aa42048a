// Package metrics defines and registers all custom Prometheus metrics for
// the EmpowerHer API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "empowerher"

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

// SessionsCreatedTotal counts bearer sessions minted at login.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of bearer sessions created.",
	},
)

// SessionsRevokedTotal counts sessions revoked by explicit logout.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of bearer sessions revoked by logout.",
	},
)

// RoleAssignmentsTotal counts role-assignment transitions.
// Label:
//   - role: the assigned role (e.g. "woman")
var RoleAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_assignments_total",
		Help:      "Total number of role assignments, by assigned role.",
	},
	[]string{"role"},
)

// OrdersPlacedTotal counts marketplace orders placed.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of marketplace orders placed.",
	},
)

// WorkshopRegistrationsTotal counts workshop registrations.
var WorkshopRegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workshop_registrations_total",
		Help:      "Total number of workshop registrations.",
	},
)
