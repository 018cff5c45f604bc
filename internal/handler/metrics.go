package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	webhooksReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "webhook",
			Name:      "events_received_total",
			Help:      "Total number of webhook deliveries received, by event type",
		},
		[]string{"event"},
	)

	webhooksRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "webhook",
			Name:      "events_rejected_total",
			Help:      "Total number of webhook deliveries rejected for a bad signature",
		},
	)

	reconciliationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "reconcile",
			Name:      "runs_total",
			Help:      "Total number of reconciliation runs, by trigger and result",
		},
		[]string{"trigger", "result"},
	)

	authorizationsOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "authorizations_opened_total",
			Help:      "Total number of payment authorizations opened",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		webhooksReceived,
		webhooksRejected,
		reconciliationsTotal,
		authorizationsOpened,
	)
}
