// Package metrics defines and registers all custom Prometheus metrics
// for the library API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "library"

// SigninAttemptsTotal counts signin attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled", or "error"
var SigninAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signin_attempts_total",
		Help:      "Total number of signin attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensRefreshedTotal counts successful refresh-token exchanges.
var TokensRefreshedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_refreshed_total",
		Help:      "Total number of access tokens minted through the refresh flow.",
	},
)

// PersonsCreatedTotal counts created Person records.
var PersonsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persons_created_total",
		Help:      "Total number of Person records created.",
	},
)

// BooksCreatedTotal counts created Book records.
var BooksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_created_total",
		Help:      "Total number of Book records created.",
	},
)

// FilesUploadedTotal counts stored file uploads.
var FilesUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_uploaded_total",
		Help:      "Total number of files stored through the upload endpoints.",
	},
)

// MathOperationsTotal counts math endpoint invocations.
// Label:
//   - operation: "sum", "sub", "mul", "div", "avg", or "sqrt"
var MathOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "math_operations_total",
		Help:      "Total number of math operations served, by operation.",
	},
	[]string{"operation"},
)
