// Package metrics defines the custom Prometheus metrics for the ticket
// board. It is the single source of truth for metric names, labels, and
// help strings. All metrics register with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ticketboard"

// ReportsBuiltTotal counts generated reports.
// Label:
//   - day: the report day chosen by the operator ("Четверг" or "Воскресенье")
var ReportsBuiltTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_built_total",
		Help:      "Total number of ticket reports generated, by report day.",
	},
	[]string{"day"},
)

// CSVRowsMatchedTotal counts uploaded CSV rows that matched a registered
// player.
var CSVRowsMatchedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "csv_rows_matched_total",
		Help:      "Total number of CSV statistics rows joined to a registered player.",
	},
)

// StatusesSweptTotal counts exemption statuses removed by the expiry sweep.
var StatusesSweptTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "statuses_swept_total",
		Help:      "Total number of expired exemption statuses removed.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
