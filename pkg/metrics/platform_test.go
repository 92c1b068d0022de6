package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestPlatformMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPlatformMetrics(reg)

	metrics.IncSwapTransition("COMPLETED")
	metrics.AddPointsCredited("Successful swap", 5)
	metrics.AddPointsCredited("Successful swap", 5)
	metrics.AddPointsDebited("Redeemed item", 300)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "swap_transitions_total", "status", "COMPLETED"); err != nil {
		t.Fatalf("fetch transitions: %v", err)
	} else if got != 1 {
		t.Fatalf("expected transitions=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "points_credited_total", "reason", "Successful swap"); err != nil {
		t.Fatalf("fetch credited: %v", err)
	} else if got != 10 {
		t.Fatalf("expected credited=10, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "points_debited_total", "reason", "Redeemed item"); err != nil {
		t.Fatalf("fetch debited: %v", err)
	} else if got != 300 {
		t.Fatalf("expected debited=300, got %f", got)
	}
}

func TestPlatformMetricsNilSafe(t *testing.T) {
	var metrics *PlatformMetrics
	metrics.IncSwapTransition("PENDING")
	metrics.AddPointsCredited("x", 1)
	metrics.AddPointsDebited("x", 1)

	empty := NewPlatformMetrics(nil)
	empty.IncSwapTransition("PENDING")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == label && pair.GetValue() == value {
					return metric.GetCounter().GetValue(), nil
				}
			}
		}
	}
	return 0, fmt.Errorf("metric %q with %s=%s not found", name, label, value)
}
