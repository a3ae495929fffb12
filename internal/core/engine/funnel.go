// Package engine is the pure calculation core: funnel math, commissions,
// P&L, unit economics, reverse-engineering and sensitivity analysis. Every
// function is deterministic and side-effect free; all inputs are explicit
// parameters and no function ever panics on degenerate arithmetic.
package engine

import (
	"fmt"

	"gtm-engine/internal/core/domain"
)

// ComputeChannelMetrics runs one channel through the funnel cascade and
// computes spend according to the channel's cost method. A disabled channel
// yields all-zero metrics rather than an error, so callers can toggle
// channels without special-casing.
func ComputeChannelMetrics(ch domain.Channel, deal domain.DealEconomics) domain.ChannelMetrics {
	m := domain.ChannelMetrics{ChannelID: ch.ID, Name: ch.Name}
	if !ch.Enabled {
		return m
	}

	m.Leads = ch.MonthlyLeads
	m.Contacts = m.Leads * ch.ContactRate
	m.MeetingsScheduled = m.Contacts * ch.MeetingRate
	m.MeetingsHeld = m.MeetingsScheduled * ch.ShowUpRate
	m.Sales = m.MeetingsHeld * ch.CloseRate

	m.Spend = channelSpend(ch, m)

	dealValue := deal.AvgDealValue
	if ch.DealValueOverride != nil {
		dealValue = *ch.DealValueOverride
	}
	// Channel revenue reflects upfront cash only. Deferred cash enters
	// LTV at the unit-economics level, never per-channel revenue.
	m.Revenue = m.Sales * dealValue * deal.UpfrontPct / 100

	m.CAC = safeDiv(m.Spend, m.Sales)
	m.ROAS = safeDiv(m.Revenue, m.Spend)
	return m
}

// channelSpend dispatches on the cost method. Each branch uses exactly the
// funnel stage the method names; there is no fallback that multiplies leads
// by price for non-per-lead methods.
func channelSpend(ch domain.Channel, m domain.ChannelMetrics) float64 {
	switch ch.CostMethod {
	case domain.CostPerLead:
		return m.Leads * ch.Price
	case domain.CostPerMeeting:
		return m.MeetingsHeld * ch.Price
	case domain.CostPerAcquisition:
		return m.Sales * ch.Price
	case domain.CostFixedBudget:
		return ch.Price
	}
	// Unknown methods are rejected by validation before computation.
	return 0
}

// AggregateChannels computes per-channel metrics and their field-wise sum.
// Disabled channels appear in the per-channel slice (as zeros) but
// contribute nothing to the total.
func AggregateChannels(channels []domain.Channel, deal domain.DealEconomics) ([]domain.ChannelMetrics, domain.GtmAggregate) {
	perChannel := make([]domain.ChannelMetrics, 0, len(channels))
	var agg domain.GtmAggregate
	for _, ch := range channels {
		m := ComputeChannelMetrics(ch, deal)
		perChannel = append(perChannel, m)
		agg.Leads += m.Leads
		agg.Contacts += m.Contacts
		agg.MeetingsScheduled += m.MeetingsScheduled
		agg.MeetingsHeld += m.MeetingsHeld
		agg.Sales += m.Sales
		agg.Spend += m.Spend
		agg.Revenue += m.Revenue
	}
	agg.BlendedCloseRate = safeDiv(agg.Sales, agg.MeetingsHeld)
	agg.BlendedCAC = safeDiv(agg.Spend, agg.Sales)
	agg.BlendedROAS = safeDiv(agg.Revenue, agg.Spend)
	return perChannel, agg
}

// ValidateInputs collects structural errors and non-fatal warnings across
// the whole input set. Errors mean the engine must not compute; warnings
// accompany a valid computation.
func ValidateInputs(in domain.ModelInputs) (errs, warns []string) {
	seen := make(map[string]bool, len(in.Channels))
	for _, ch := range in.Channels {
		errs = append(errs, ch.Validate()...)
		if ch.ID != "" && seen[ch.ID] {
			errs = append(errs, fmt.Sprintf("channel %q: duplicate id", ch.ID))
		}
		seen[ch.ID] = true
	}
	dealErrs, dealWarns := in.Deal.Validate()
	errs = append(errs, dealErrs...)
	warns = append(warns, dealWarns...)

	teamErrs, teamWarns := in.Team.Validate()
	errs = append(errs, teamErrs...)
	warns = append(warns, teamWarns...)

	if in.OtherOpexMonthly < 0 {
		errs = append(errs, fmt.Sprintf("other_opex_monthly must be >= 0, got %g", in.OtherOpexMonthly))
	}
	return errs, warns
}

// safeDiv returns a/b, or 0 when b is zero. This is the engine-wide policy
// for blended rates and ratios reported as plain numbers.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
