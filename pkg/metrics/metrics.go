package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 后端请求
	BackendAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "device_backend_attempts_total",
			Help: "Total number of backend request attempts",
		},
		[]string{"result"}, // response, transport_error
	)

	BackendRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "device_backend_request_duration_seconds",
			Help:    "Duration of a single backend request attempt",
			Buckets: prometheus.DefBuckets,
		},
	)

	// 指令结果
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "device_commands_total",
			Help: "Total number of handled commands by outcome",
		},
		[]string{"outcome"}, // ok, connectivity, transport, payload
	)

	// 动作
	ActionsExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "device_actions_executed_total",
			Help: "Total number of executed actions by kind",
		},
		[]string{"kind"},
	)

	ActionsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "device_actions_skipped_total",
			Help: "Total number of skipped actions by reason",
		},
		[]string{"reason"}, // unknown_type, invalid_field
	)

	LEDState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "device_led_on",
			Help: "Last commanded LED state (1 = on)",
		},
	)
)
