// Package observability provides Prometheus instrumentation for the
// application store and pipeline.
package observability

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var (
	applicationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hirelink_applications_created_total",
		Help: "Number of applications created in this session.",
	})

	stageTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hirelink_stage_transitions_total",
		Help: "Number of pipeline stage transitions, labeled by target stage.",
	}, []string{"stage"})
)

// RecordApplicationCreated increments the creation counter.
func RecordApplicationCreated() {
	applicationsCreated.Inc()
}

// RecordStageTransition increments the transition counter for the target stage.
func RecordStageTransition(stage string) {
	stageTransitions.WithLabelValues(stage).Inc()
}

// WriteMetrics dumps the registered metrics to w in the Prometheus text
// exposition format. There is no metrics server in a single-actor CLI, so
// this is the only way the counters surface.
func WriteMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
