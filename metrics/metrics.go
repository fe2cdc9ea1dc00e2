package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TargetClamps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gopt_target_clamps_total",
			Help: "Computed target prices clamped to zero (by result field).",
		},
		[]string{"field"},
	)

	AnalysisFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gopt_analysis_failures_total",
			Help: "Volatility target computations degraded to the zero result (by reason).",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(TargetClamps, AnalysisFailures)
}
