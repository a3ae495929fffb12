package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtm-engine/internal/core/domain"
)

func testInputs() domain.ModelInputs {
	return domain.ModelInputs{
		Channels:         []domain.Channel{testChannel()},
		Deal:             testDeal(),
		Team:             testTeam(),
		OtherOpexMonthly: 25000,
	}
}

func TestSensitivityLinearDrivers(t *testing.T) {
	out, ok := ModelSensitivity(testInputs(), "revenue", 0)
	require.True(t, ok)

	// Revenue is linear in close rate and lead volume: elasticity 1.
	e := out["channel.outbound.close_rate"]
	require.NotNil(t, e)
	require.InDelta(t, 1.0, *e, 1e-9)

	e = out["channel.outbound.monthly_leads"]
	require.NotNil(t, e)
	require.InDelta(t, 1.0, *e, 1e-9)

	// Price moves spend, not revenue.
	e = out["channel.outbound.price"]
	require.NotNil(t, e)
	require.InDelta(t, 0, *e, 1e-9)
}

func TestSensitivitySignConsistency(t *testing.T) {
	for _, metric := range []string{"revenue", "sales"} {
		out, ok := ModelSensitivity(testInputs(), metric, 0.05)
		require.True(t, ok)
		e := out["channel.outbound.close_rate"]
		require.NotNil(t, e)
		assert.GreaterOrEqual(t, *e, 0.0, "metric %s", metric)
	}
}

func TestSensitivityZeroBaselineUndefined(t *testing.T) {
	zero := func(map[string]float64) float64 { return 0 }
	out := Sensitivity(zero, map[string]float64{"a": 1, "b": 2}, 0.01)
	require.Len(t, out, 2)
	assert.Nil(t, out["a"])
	assert.Nil(t, out["b"])
}

func TestSensitivityUnknownMetric(t *testing.T) {
	_, ok := ModelSensitivity(testInputs(), "nonsense", 0)
	assert.False(t, ok)
}

func TestSensitivityDoesNotMutateInputs(t *testing.T) {
	in := testInputs()
	leads := in.Channels[0].MonthlyLeads
	_, _ = ModelSensitivity(in, "ebitda", 0)
	assert.Equal(t, leads, in.Channels[0].MonthlyLeads)
}

func TestCompareScenarios(t *testing.T) {
	baseline := testInputs()
	alt := testInputs()
	alt.Channels[0].MonthlyLeads = 2000

	deltas := CompareScenarios(baseline, alt, func(in domain.ModelInputs) map[string]float64 {
		return ModelMetrics(ComputeModel(in))
	})

	rev := deltas["revenue"]
	require.InDelta(t, 1_911_000, rev.Baseline, 1e-6)
	require.InDelta(t, 3_822_000, rev.Scenario, 1e-6)
	require.NotNil(t, rev.DeltaPct)
	require.InDelta(t, 1.0, *rev.DeltaPct, 1e-9)
}

func TestCompareScenariosZeroBaseline(t *testing.T) {
	baseline := testInputs()
	baseline.Channels[0].MonthlyLeads = 0
	baseline.Channels[0].CostMethod = domain.CostPerLead

	alt := testInputs()
	deltas := CompareScenarios(baseline, alt, func(in domain.ModelInputs) map[string]float64 {
		return ModelMetrics(ComputeModel(in))
	})
	assert.Nil(t, deltas["revenue"].DeltaPct)
	assert.Greater(t, deltas["revenue"].Delta, 0.0)
}
