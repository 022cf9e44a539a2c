package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile dumps the gathered metrics to path in Prometheus text format, for pickup by a
// node-exporter textfile collector. A nil gatherer or empty path is a no-op.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if gatherer == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
