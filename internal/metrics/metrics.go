package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transfer outcomes.
const (
	TransferSucceeded = "succeeded"
	TransferRejected  = "rejected"
	TransferInvalid   = "invalid"
)

var (
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aura_logins_total",
		Help: "Login attempts by outcome",
	}, []string{"success"})

	Transfers = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aura_transfers_total",
		Help: "Transfers by outcome: succeeded, rejected (business rule) or invalid (bad argument)",
	}, []string{"result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aura_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func ObserveLogin(success bool) {
	if success {
		Logins.WithLabelValues("true").Inc()
		return
	}
	Logins.WithLabelValues("false").Inc()
}

func ObserveTransfer(result string) {
	Transfers.WithLabelValues(result).Inc()
}
