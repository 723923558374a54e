//go:build unit || e2e

package testutil

import (
	"io"
	"log/slog"

	"fullplanes/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewMetrics registers on a private registry so tests never collide on the default one.
func NewMetrics() *metrics.Metrics {
	return metrics.NewMetrics("fullplanes_test", prometheus.NewRegistry())
}
