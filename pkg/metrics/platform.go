package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PlatformMetrics records swap lifecycle and points flow counters.
type PlatformMetrics struct {
	swapTransitions *prometheus.CounterVec
	pointsCredited  *prometheus.CounterVec
	pointsDebited   *prometheus.CounterVec
}

// NewPlatformMetrics registers the platform metrics on the provided registerer.
func NewPlatformMetrics(reg prometheus.Registerer) *PlatformMetrics {
	if reg == nil {
		return &PlatformMetrics{}
	}
	swapTransitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "swap_transitions_total",
		Help: "Swap state machine transitions by resulting status.",
	}, []string{"status"})
	pointsCredited := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "points_credited_total",
		Help: "Points credited to user balances by reason.",
	}, []string{"reason"})
	pointsDebited := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "points_debited_total",
		Help: "Points debited from user balances by reason.",
	}, []string{"reason"})
	reg.MustRegister(swapTransitions, pointsCredited, pointsDebited)
	return &PlatformMetrics{
		swapTransitions: swapTransitions,
		pointsCredited:  pointsCredited,
		pointsDebited:   pointsDebited,
	}
}

// IncSwapTransition increments the transition counter for the resulting status.
func (m *PlatformMetrics) IncSwapTransition(status string) {
	if m == nil || m.swapTransitions == nil {
		return
	}
	m.swapTransitions.WithLabelValues(normalizeLabel(status)).Inc()
}

// AddPointsCredited records credited points for the given reason.
func (m *PlatformMetrics) AddPointsCredited(reason string, amount int) {
	if m == nil || m.pointsCredited == nil || amount <= 0 {
		return
	}
	m.pointsCredited.WithLabelValues(normalizeLabel(reason)).Add(float64(amount))
}

// AddPointsDebited records debited points for the given reason.
func (m *PlatformMetrics) AddPointsDebited(reason string, amount int) {
	if m == nil || m.pointsDebited == nil || amount <= 0 {
		return
	}
	m.pointsDebited.WithLabelValues(normalizeLabel(reason)).Add(float64(amount))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
