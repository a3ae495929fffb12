package engine

import "gtm-engine/internal/core/domain"

// DefaultBumpPct is the default perturbation applied per input key.
const DefaultBumpPct = 0.01

// MetricFunc computes a single output metric from a flat parameter map.
type MetricFunc func(params map[string]float64) float64

// Sensitivity computes a finite-difference elasticity for each input key:
// percent change in the metric per percent change in the input. Keys are
// perturbed one at a time, so results are independent and order does not
// matter. A zero baseline metric makes every elasticity undefined (nil);
// bumpPct <= 0 falls back to DefaultBumpPct.
func Sensitivity(f MetricFunc, params map[string]float64, bumpPct float64) map[string]*float64 {
	if bumpPct <= 0 {
		bumpPct = DefaultBumpPct
	}
	baseline := f(params)
	out := make(map[string]*float64, len(params))
	for key := range params {
		if baseline == 0 {
			out[key] = nil
			continue
		}
		bumped := make(map[string]float64, len(params))
		for k, v := range params {
			bumped[k] = v
		}
		bumped[key] *= 1 + bumpPct
		e := (f(bumped) - baseline) / baseline / bumpPct
		out[key] = &e
	}
	return out
}

// CompareScenarios evaluates the same metric set on two input sets and
// reports per-metric deltas. DeltaPct is nil for metrics whose baseline
// value is zero. Metrics present in only one result are compared against
// zero on the other side.
func CompareScenarios[T any](baseline, alt T, metricsFn func(T) map[string]float64) map[string]domain.MetricDelta {
	base := metricsFn(baseline)
	scen := metricsFn(alt)

	keys := make(map[string]bool, len(base)+len(scen))
	for k := range base {
		keys[k] = true
	}
	for k := range scen {
		keys[k] = true
	}

	out := make(map[string]domain.MetricDelta, len(keys))
	for k := range keys {
		d := domain.MetricDelta{Baseline: base[k], Scenario: scen[k]}
		d.Delta = d.Scenario - d.Baseline
		if d.Baseline != 0 {
			pct := d.Delta / d.Baseline
			d.DeltaPct = &pct
		}
		out[k] = d
	}
	return out
}
