package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls счетчик вызовов API
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_calls_total",
			Help: "Вызовы API инструментов",
		},
		[]string{"service", "endpoint", "status"},
	)

	// CacheLookups счетчик обращений к кэшу результатов
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_cache_lookups_total",
			Help: "Обращения к кэшу результатов расчетов",
		},
		[]string{"tool_name", "result"},
	)

	// CalculationDuration длительность расчета
	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calculation_duration_seconds",
			Help:    "Длительность расчета инструмента",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
		[]string{"tool_name"},
	)
)
