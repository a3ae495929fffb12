package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() FunnelRates {
	return FunnelRates{ContactRate: 0.65, MeetingRate: 0.40, ShowUpRate: 0.70, CloseRate: 0.30}
}

func TestReverseRoundTrip(t *testing.T) {
	rates := testRates()
	res := ReverseFromSales(54.6, rates)
	require.True(t, res.Feasible)

	// Running the forward funnel on leads_needed must reproduce the target.
	forward := res.LeadsNeeded * rates.ContactRate * rates.MeetingRate * rates.ShowUpRate * rates.CloseRate
	require.InDelta(t, 54.6, forward, 1e-9)
	require.InDelta(t, 1000, res.LeadsNeeded, 1e-9)
	require.InDelta(t, 182, res.MeetingsHeldNeeded, 1e-9)
}

func TestReverseInfeasibleOnZeroRate(t *testing.T) {
	rates := testRates()
	rates.CloseRate = 0
	res := ReverseFromSales(5, rates)
	assert.False(t, res.Feasible)
	assert.Contains(t, res.Reason, "close_rate")
	assert.Zero(t, res.LeadsNeeded)

	// A zero target is reachable regardless of rates.
	res = ReverseFromSales(0, FunnelRates{})
	assert.True(t, res.Feasible)
	assert.Zero(t, res.LeadsNeeded)
}

func TestReverseFromMeetingsHeld(t *testing.T) {
	res := ReverseFromMeetingsHeld(182, testRates())
	require.True(t, res.Feasible)
	require.InDelta(t, 1000, res.LeadsNeeded, 1e-9)
	require.InDelta(t, 260, res.MeetingsScheduledNeeded, 1e-9)
	require.InDelta(t, 54.6, res.SalesNeeded, 1e-9)
}

func TestReverseFromEBITDA(t *testing.T) {
	target := EBITDATarget{
		TargetEBITDA:        100_000,
		FixedCostsMonthly:   150_000,
		RevenuePerSale:      35_000,
		CommissionPerSale:   8_750,
		VariableCostPerSale: 1_250,
	}
	// Margin per sale $25k, required $250k -> 10 sales.
	res := ReverseFromEBITDA(target, testRates())
	require.True(t, res.Feasible)
	require.InDelta(t, 10, res.SalesNeeded, 1e-9)
	require.InDelta(t, 10/(0.65*0.40*0.70*0.30), res.LeadsNeeded, 1e-9)
}

func TestReverseFromEBITDAInfeasibleMargin(t *testing.T) {
	target := EBITDATarget{
		TargetEBITDA:      50_000,
		FixedCostsMonthly: 10_000,
		RevenuePerSale:    1_000,
		CommissionPerSale: 1_500,
	}
	res := ReverseFromEBITDA(target, testRates())
	assert.False(t, res.Feasible)
	assert.Contains(t, res.Reason, "margin")
}

func TestReverseFromEBITDAAlreadyMet(t *testing.T) {
	// Negative fixed costs net of target: zero sales already suffice.
	target := EBITDATarget{TargetEBITDA: -20_000, FixedCostsMonthly: 10_000, RevenuePerSale: 1000}
	res := ReverseFromEBITDA(target, testRates())
	require.True(t, res.Feasible)
	assert.Zero(t, res.SalesNeeded)
	assert.Zero(t, res.LeadsNeeded)
}
