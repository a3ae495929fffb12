package engine

import "gtm-engine/internal/core/domain"

// This file bridges the typed model inputs and the flat parameter maps the
// sensitivity routine works on. Flatten and Apply cover exactly the numeric
// fields the engine consumes, so perturbing a key always moves the output
// it claims to drive.

// FlattenParams extracts the numeric drivers of a model into a flat map.
// Channel keys are namespaced by channel id; disabled channels are skipped
// since they cannot influence output.
func FlattenParams(in domain.ModelInputs) map[string]float64 {
	params := map[string]float64{
		"deal.avg_deal_value": in.Deal.AvgDealValue,
		"deal.upfront_pct":    in.Deal.UpfrontPct,
		"deal.grr":            in.Deal.GRR,
		"deal.gov_cost_pct":   in.Deal.GovCostPct,
		"opex.other_monthly":  in.OtherOpexMonthly,
	}
	for _, ch := range in.Channels {
		if !ch.Enabled {
			continue
		}
		prefix := "channel." + ch.ID + "."
		params[prefix+"monthly_leads"] = ch.MonthlyLeads
		params[prefix+"contact_rate"] = ch.ContactRate
		params[prefix+"meeting_rate"] = ch.MeetingRate
		params[prefix+"show_up_rate"] = ch.ShowUpRate
		params[prefix+"close_rate"] = ch.CloseRate
		params[prefix+"price"] = ch.Price
	}
	return params
}

// ApplyParams returns a copy of the inputs with the parameter map written
// back into the corresponding fields. Unknown keys are ignored. The
// upfront/deferred split invariant is maintained by deriving deferred_pct
// from the (possibly perturbed) upfront_pct.
func ApplyParams(in domain.ModelInputs, params map[string]float64) domain.ModelInputs {
	out := in
	out.Channels = make([]domain.Channel, len(in.Channels))
	copy(out.Channels, in.Channels)

	if v, ok := params["deal.avg_deal_value"]; ok {
		out.Deal.AvgDealValue = v
	}
	if v, ok := params["deal.upfront_pct"]; ok {
		out.Deal.UpfrontPct = v
		out.Deal.DeferredPct = 100 - v
	}
	if v, ok := params["deal.grr"]; ok {
		out.Deal.GRR = v
	}
	if v, ok := params["deal.gov_cost_pct"]; ok {
		out.Deal.GovCostPct = v
	}
	if v, ok := params["opex.other_monthly"]; ok {
		out.OtherOpexMonthly = v
	}
	for i := range out.Channels {
		ch := &out.Channels[i]
		if !ch.Enabled {
			continue
		}
		prefix := "channel." + ch.ID + "."
		if v, ok := params[prefix+"monthly_leads"]; ok {
			ch.MonthlyLeads = v
		}
		if v, ok := params[prefix+"contact_rate"]; ok {
			ch.ContactRate = v
		}
		if v, ok := params[prefix+"meeting_rate"]; ok {
			ch.MeetingRate = v
		}
		if v, ok := params[prefix+"show_up_rate"]; ok {
			ch.ShowUpRate = v
		}
		if v, ok := params[prefix+"close_rate"]; ok {
			ch.CloseRate = v
		}
		if v, ok := params[prefix+"price"]; ok {
			ch.Price = v
		}
	}
	return out
}

// ModelMetrics is the standard metric set used for scenario comparison and
// as sensitivity targets.
func ModelMetrics(res domain.ModelResult) map[string]float64 {
	m := map[string]float64{
		"leads":            res.Total.Leads,
		"meetings_held":    res.Total.MeetingsHeld,
		"sales":            res.Total.Sales,
		"revenue":          res.Total.Revenue,
		"spend":            res.Total.Spend,
		"roas":             res.Total.BlendedROAS,
		"cac":              res.Total.BlendedCAC,
		"total_commission": res.Pools.Total,
		"gross_profit":     res.PnL.GrossProfit,
		"ebitda":           res.PnL.EBITDA,
		"ltv":              res.UnitEconomics.LTV,
	}
	return m
}

// MetricValue picks a single named metric from a result. The second return
// is false for unknown metric names.
func MetricValue(res domain.ModelResult, metric string) (float64, bool) {
	v, ok := ModelMetrics(res)[metric]
	return v, ok
}

// ModelSensitivity computes elasticities of one named metric against every
// numeric driver of the model. The metric function rebuilds typed inputs
// from the perturbed map and reruns the full model, so cross-effects
// (e.g. price feeding both spend and CAC) are captured.
func ModelSensitivity(in domain.ModelInputs, metric string, bumpPct float64) (map[string]*float64, bool) {
	if _, ok := MetricValue(ComputeModel(in), metric); !ok {
		return nil, false
	}
	f := func(params map[string]float64) float64 {
		v, _ := MetricValue(ComputeModel(ApplyParams(in, params)), metric)
		return v
	}
	return Sensitivity(f, FlattenParams(in), bumpPct), true
}
