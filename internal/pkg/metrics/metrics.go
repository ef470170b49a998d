// Package metrics defines and registers the custom Prometheus metrics of the
// user API. HTTP request metrics come from the echoprometheus middleware; the
// collectors here cover domain events only.
//
// All collectors are registered with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userapi"

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersCreatedTotal counts successfully created users.
// Label:
//   - role: "admin", "user" or "guest"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)

// UserOperationErrorsTotal counts directory operations rejected by the store.
// Labels:
//   - operation: "create", "get", "update" or "delete"
//   - reason: "conflict", "not_found" or "internal"
var UserOperationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_operation_errors_total",
		Help:      "Total number of failed user directory operations.",
	},
	[]string{"operation", "reason"},
)

// UsersStored tracks the number of records in the store after each mutation.
var UsersStored = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "users_stored",
		Help:      "Current number of user records in the store.",
	},
)

// ── Greeting metrics ──────────────────────────────────────────────────────────

// GreetingsServedTotal counts personalised greetings.
// Label:
//   - language: the resolved language code ("ko", "en", "ja")
var GreetingsServedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "greetings_served_total",
		Help:      "Total number of personalised greetings, by resolved language.",
	},
	[]string{"language"},
)
