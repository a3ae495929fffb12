package engine

import (
	"fmt"

	"gtm-engine/internal/core/domain"
)

// FunnelRates is the conversion profile used for reverse-engineering,
// independent of any particular channel's volume or pricing.
type FunnelRates struct {
	ContactRate float64 `json:"contact_rate"`
	MeetingRate float64 `json:"meeting_rate"`
	ShowUpRate  float64 `json:"show_up_rate"`
	CloseRate   float64 `json:"close_rate"`
}

// EBITDATarget describes a target-EBITDA reverse solve. Margin per sale is
// revenue per sale minus commission and variable cost per sale; fixed costs
// are the monthly costs that must be covered before EBITDA turns positive.
type EBITDATarget struct {
	TargetEBITDA        float64 `json:"target_ebitda"`
	FixedCostsMonthly   float64 `json:"fixed_costs_monthly"`
	RevenuePerSale      float64 `json:"revenue_per_sale"`
	CommissionPerSale   float64 `json:"commission_per_sale"`
	VariableCostPerSale float64 `json:"variable_cost_per_sale"`
}

// ReverseFromSales walks the funnel backwards from a sales target to the
// leads required. Each stage is exact division; a zero rate with a positive
// target makes the result infeasible instead of infinite.
func ReverseFromSales(targetSales float64, rates FunnelRates) domain.ReverseResult {
	if targetSales < 0 {
		return infeasible("target sales must be >= 0")
	}
	r := domain.ReverseResult{Feasible: true, SalesNeeded: targetSales}
	var ok bool
	if r.MeetingsHeldNeeded, ok = invertStage(targetSales, rates.CloseRate); !ok {
		return infeasible("close_rate is 0: no number of meetings reaches the sales target")
	}
	if r.MeetingsScheduledNeeded, ok = invertStage(r.MeetingsHeldNeeded, rates.ShowUpRate); !ok {
		return infeasible("show_up_rate is 0: no number of scheduled meetings reaches the target")
	}
	if r.ContactsNeeded, ok = invertStage(r.MeetingsScheduledNeeded, rates.MeetingRate); !ok {
		return infeasible("meeting_rate is 0: no number of contacts reaches the target")
	}
	if r.LeadsNeeded, ok = invertStage(r.ContactsNeeded, rates.ContactRate); !ok {
		return infeasible("contact_rate is 0: no number of leads reaches the target")
	}
	return r
}

// ReverseFromMeetingsHeld solves upstream volumes for a meetings-held
// target. Sales needed is the forward projection of that many meetings.
func ReverseFromMeetingsHeld(targetMeetingsHeld float64, rates FunnelRates) domain.ReverseResult {
	if targetMeetingsHeld < 0 {
		return infeasible("target meetings held must be >= 0")
	}
	r := domain.ReverseResult{
		Feasible:           true,
		MeetingsHeldNeeded: targetMeetingsHeld,
		SalesNeeded:        targetMeetingsHeld * rates.CloseRate,
	}
	var ok bool
	if r.MeetingsScheduledNeeded, ok = invertStage(targetMeetingsHeld, rates.ShowUpRate); !ok {
		return infeasible("show_up_rate is 0: no number of scheduled meetings reaches the target")
	}
	if r.ContactsNeeded, ok = invertStage(r.MeetingsScheduledNeeded, rates.MeetingRate); !ok {
		return infeasible("meeting_rate is 0: no number of contacts reaches the target")
	}
	if r.LeadsNeeded, ok = invertStage(r.ContactsNeeded, rates.ContactRate); !ok {
		return infeasible("contact_rate is 0: no number of leads reaches the target")
	}
	return r
}

// ReverseFromEBITDA first solves the financial inverse for the sales count
// covering fixed costs plus the EBITDA target, then walks the funnel back
// from that count. A non-positive margin per sale is infeasible: selling
// more only moves EBITDA the wrong way.
func ReverseFromEBITDA(t EBITDATarget, rates FunnelRates) domain.ReverseResult {
	margin := t.RevenuePerSale - t.CommissionPerSale - t.VariableCostPerSale
	required := t.TargetEBITDA + t.FixedCostsMonthly
	if required <= 0 {
		// Fixed costs already below target at zero sales.
		return ReverseFromSales(0, rates)
	}
	if margin <= 0 {
		return infeasible(fmt.Sprintf("margin per sale is %g: the EBITDA target cannot be reached by selling more", margin))
	}
	return ReverseFromSales(required/margin, rates)
}

// invertStage returns target/rate. A zero rate is only acceptable when the
// target is also zero.
func invertStage(target, rate float64) (float64, bool) {
	if rate == 0 {
		if target == 0 {
			return 0, true
		}
		return 0, false
	}
	return target / rate, true
}

func infeasible(reason string) domain.ReverseResult {
	return domain.ReverseResult{Feasible: false, Reason: reason}
}
