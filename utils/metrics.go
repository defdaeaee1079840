package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Todo Metrics
	TodoOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_operations_total",
			Help: "Total number of todo operations",
		},
		[]string{"operation"}, // create, update, delete, move, complete
	)

	// Category Metrics
	CategoryOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "category_operations_total",
			Help: "Total number of category operations",
		},
		[]string{"operation"}, // create, update, delete, reorder
	)

	// Settings Metrics
	SettingsMergesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settings_merges_total",
			Help: "Total number of settings merge operations",
		},
		[]string{"outcome"}, // created, merged
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type and detail",
		},
		[]string{"type", "detail"}, // database/validation/cache, specific failure
	)
)

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackTodoOperation increments the todo operation counter
func TrackTodoOperation(operation string) {
	TodoOperationsTotal.WithLabelValues(operation).Inc()
}

// TrackCategoryOperation increments the category operation counter
func TrackCategoryOperation(operation string) {
	CategoryOperationsTotal.WithLabelValues(operation).Inc()
}

// TrackSettingsMerge records the outcome of a settings merge
func TrackSettingsMerge(outcome string) {
	SettingsMergesTotal.WithLabelValues(outcome).Inc()
}

// TrackError increments the error counter by type and detail
func TrackError(errorType, detail string) {
	ErrorsTotal.WithLabelValues(errorType, detail).Inc()
}
