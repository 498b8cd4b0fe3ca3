// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RPCRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deadswitch_rpc_requests_total",
			Help: "Total number of gRPC requests by method and numeric result code.",
		},
		[]string{"method", "code"},
	)

	RPCRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "deadswitch_rpc_request_duration_seconds",
			Help:    "Duration of gRPC requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deadswitch_http_requests_total",
			Help: "Total number of admin HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	SwitchesRegisteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deadswitch_switches_registered_total",
			Help: "Total number of registered switches.",
		},
	)

	TriggersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deadswitch_triggers_total",
			Help: "Total number of trigger executions by source and result.",
		},
		[]string{"source", "result"},
	)

	PayoutAmountTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deadswitch_payout_amount_total",
			Help: "Sum of token units paid out to beneficiaries.",
		},
	)

	GuardianExtensionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deadswitch_guardian_extensions_total",
			Help: "Total number of guardian deadline extensions.",
		},
	)

	KeeperLastHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "deadswitch_keeper_last_height",
			Help: "Block height of the last keeper sweep.",
		},
	)
)

// MustRegister registers every collector with reg.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		RPCRequestsTotal,
		RPCRequestDurationSeconds,
		HTTPRequestsTotal,
		SwitchesRegisteredTotal,
		TriggersTotal,
		PayoutAmountTotal,
		GuardianExtensionsTotal,
		KeeperLastHeight,
	)
}
