package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtm-engine/internal/core/domain"
)

func testDeal() domain.DealEconomics {
	return domain.DealEconomics{
		AvgDealValue:     50000,
		UpfrontPct:       70,
		DeferredPct:      30,
		DeferredMonths:   12,
		GRR:              0.9,
		CommissionPolicy: domain.CommissionUpfrontOnly,
		GovCostPct:       5,
		ContractMonths:   12,
	}
}

func testChannel() domain.Channel {
	return domain.Channel{
		ID:           "outbound",
		Name:         "Outbound SDR",
		MonthlyLeads: 1000,
		ContactRate:  0.65,
		MeetingRate:  0.40,
		ShowUpRate:   0.70,
		CloseRate:    0.30,
		CostMethod:   domain.CostPerMeeting,
		Price:        200,
		Enabled:      true,
	}
}

func TestFunnelCascade(t *testing.T) {
	m := ComputeChannelMetrics(testChannel(), testDeal())

	require.InDelta(t, 650, m.Contacts, 1e-9)
	require.InDelta(t, 260, m.MeetingsScheduled, 1e-9)
	require.InDelta(t, 182, m.MeetingsHeld, 1e-9)
	require.InDelta(t, 54.6, m.Sales, 1e-9)

	// Revenue counts upfront cash only: 54.6 deals at $35k upfront.
	require.InDelta(t, 1_911_000, m.Revenue, 1e-6)
	require.InDelta(t, 36_400, m.Spend, 1e-9)
	require.InDelta(t, 52.5, m.ROAS, 1e-9)
}

func TestSpendDispatch(t *testing.T) {
	base := testChannel()
	base.ContactRate = 0.5
	base.MeetingRate = 0.1
	base.ShowUpRate = 0.5
	base.CloseRate = 0.2
	// funnel: 1000 leads -> 500 contacts -> 50 scheduled -> 25 held -> 5 sales

	cases := []struct {
		name   string
		method domain.CostMethod
		price  float64
		want   float64
	}{
		{"per lead", domain.CostPerLead, 2, 2000},
		{"per meeting", domain.CostPerMeeting, 200, 5000},
		{"per acquisition", domain.CostPerAcquisition, 100, 500},
		{"fixed budget", domain.CostFixedBudget, 1234, 1234},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ch := base
			ch.CostMethod = tc.method
			ch.Price = tc.price
			m := ComputeChannelMetrics(ch, testDeal())
			require.InDelta(t, tc.want, m.Spend, 1e-9)
		})
	}
}

func TestFunnelMonotonic(t *testing.T) {
	rates := []float64{0, 0.25, 0.5, 0.75, 1}
	for _, cr := range rates {
		for _, mr := range rates {
			for _, sr := range rates {
				for _, clr := range rates {
					ch := testChannel()
					ch.ContactRate, ch.MeetingRate, ch.ShowUpRate, ch.CloseRate = cr, mr, sr, clr
					m := ComputeChannelMetrics(ch, testDeal())
					assert.GreaterOrEqual(t, m.Leads, m.Contacts)
					assert.GreaterOrEqual(t, m.Contacts, m.MeetingsScheduled)
					assert.GreaterOrEqual(t, m.MeetingsScheduled, m.MeetingsHeld)
					assert.GreaterOrEqual(t, m.MeetingsHeld, m.Sales)
				}
			}
		}
	}
}

func TestAggregateMatchesChannelSums(t *testing.T) {
	a := testChannel()
	b := testChannel()
	b.ID = "paid_social"
	b.MonthlyLeads = 400
	b.CostMethod = domain.CostPerLead
	b.Price = 15
	c := testChannel()
	c.ID = "events"
	c.CostMethod = domain.CostFixedBudget
	c.Price = 20000

	perChannel, total := AggregateChannels([]domain.Channel{a, b, c}, testDeal())
	require.Len(t, perChannel, 3)

	var leads, sales, spend, revenue float64
	for _, m := range perChannel {
		leads += m.Leads
		sales += m.Sales
		spend += m.Spend
		revenue += m.Revenue
	}
	require.InDelta(t, leads, total.Leads, 1e-9)
	require.InDelta(t, sales, total.Sales, 1e-9)
	require.InDelta(t, spend, total.Spend, 1e-9)
	require.InDelta(t, revenue, total.Revenue, 1e-9)

	require.InDelta(t, total.Sales/total.MeetingsHeld, total.BlendedCloseRate, 1e-9)
	require.InDelta(t, total.Spend/total.Sales, total.BlendedCAC, 1e-9)
}

func TestDisabledChannelNeutral(t *testing.T) {
	enabled := testChannel()
	disabled := testChannel()
	disabled.ID = "paused"
	disabled.Enabled = false

	m := ComputeChannelMetrics(disabled, testDeal())
	assert.Zero(t, m.Leads)
	assert.Zero(t, m.Sales)
	assert.Zero(t, m.Spend)
	assert.Zero(t, m.Revenue)

	_, with := AggregateChannels([]domain.Channel{enabled, disabled}, testDeal())
	_, without := AggregateChannels([]domain.Channel{enabled}, testDeal())
	assert.Equal(t, without, with)
}

func TestBlendedRatesZeroGuard(t *testing.T) {
	ch := testChannel()
	ch.MonthlyLeads = 0
	_, total := AggregateChannels([]domain.Channel{ch}, testDeal())
	assert.Zero(t, total.BlendedCloseRate)
	assert.Zero(t, total.BlendedCAC)
	assert.Zero(t, total.BlendedROAS)
}

func TestValidateInputs(t *testing.T) {
	in := domain.ModelInputs{
		Channels: []domain.Channel{testChannel()},
		Deal:     testDeal(),
		Team:     domain.TeamStructure{Closer: domain.RoleComp{Count: 1, BaseAnnual: 60000, VariableAnnual: 90000, CommissionPct: 20}},
	}
	errs, warns := ValidateInputs(in)
	assert.Empty(t, errs)
	assert.Empty(t, warns)

	bad := in
	bad.Channels = []domain.Channel{testChannel(), testChannel()} // duplicate id
	bad.Channels[1].ContactRate = 1.5
	bad.Channels[1].Price = -1
	bad.Deal.AvgDealValue = 0
	errs, _ = ValidateInputs(bad)
	assert.Len(t, errs, 4)

	warned := in
	warned.Deal.DeferredPct = 50 // split no longer sums to 100
	warned.Team.Closer.CommissionPct = 120
	errs, warns = ValidateInputs(warned)
	assert.Empty(t, errs)
	assert.NotEmpty(t, warns)
}
