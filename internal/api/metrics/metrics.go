// Package metrics defines and registers all custom Prometheus metrics for
// the admin API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smartcare"

// UsersCreatedTotal counts administratively created (invited) users.
// Label:
//   - role: the numeric role the user was created with
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created through the admin API, by role.",
	},
	[]string{"role"},
)

// InvitesSentTotal counts invite mail delivery attempts.
// Label:
//   - result: "ok" or "error"
var InvitesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invites_sent_total",
		Help:      "Total number of invite mail deliveries, by result.",
	},
	[]string{"result"},
)

// InviteQueueDepth tracks the number of invite jobs waiting per worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var InviteQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "invite_queue_depth",
		Help:      "Current number of invite jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ListQueriesTotal counts scoped list queries served, by collection and by
// how the principal was scoped.
// Labels:
//   - collection: "users" or "tickets"
//   - scope: "unrestricted", "partner", or "self"
var ListQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_queries_total",
		Help:      "Total number of scoped list queries served, by collection and scope kind.",
	},
	[]string{"collection", "scope"},
)
