// Package metrics defines and registers the custom Prometheus metrics for
// the account service. It is the single source of truth for metric names,
// labels, and help strings. Request-level HTTP metrics come from the
// echoprometheus middleware registered by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created through registration.",
	},
)

// TokenFailuresTotal counts bearer-token verification failures. The reason
// label keeps the sub-failure visible to operators even though clients only
// ever see a collapsed "invalid or expired token".
// Label:
//   - reason: "signature", "expired", or "malformed"
var TokenFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_failures_total",
		Help:      "Total number of token verification failures, by reason.",
	},
	[]string{"reason"},
)
