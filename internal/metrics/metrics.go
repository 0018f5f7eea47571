package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SessionsOpened counts opened payment sessions by effective mode and outcome
	SessionsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tempocash_sessions_opened_total",
			Help: "Total number of payment sessions opened",
		},
		[]string{"mode", "outcome"},
	)

	// ActiveSessions tracks sessions held by the API server
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tempocash_active_sessions",
			Help: "Number of open payment sessions",
		},
	)

	// SessionsEvicted counts sessions dropped by the registry janitor by reason
	SessionsEvicted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tempocash_sessions_evicted_total",
			Help: "Total number of idle payment sessions evicted",
		},
		[]string{"reason"},
	)

	// TransitionsTotal counts approve/settle attempts by outcome (ok or error kind)
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tempocash_transitions_total",
			Help: "Total number of payment session transitions",
		},
		[]string{"operation", "mode", "outcome"},
	)

	// TransitionDuration tracks how long approve/settle take end to end
	TransitionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tempocash_transition_duration_seconds",
			Help:    "Payment session transition duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"operation", "mode"},
	)

	// StaleSessions counts sessions invalidated by a chain change
	StaleSessions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tempocash_stale_sessions_total",
			Help: "Total number of sessions invalidated by a wallet chain change",
		},
	)

	// PaymentsCreated counts merchant payment requests by mode
	PaymentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tempocash_payments_created_total",
			Help: "Total number of payment requests created",
		},
		[]string{"mode"},
	)

	// WalletEvents counts wallet notifications by type
	WalletEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tempocash_wallet_events_total",
			Help: "Total number of wallet notifications observed",
		},
		[]string{"type"},
	)

	// GasUsed tracks gas used by ledger transactions
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tempocash_gas_used",
			Help:    "Gas used for payment transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000},
		},
		[]string{"operation"},
	)
)
