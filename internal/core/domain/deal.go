package domain

import "fmt"

// CommissionPolicy selects the per-deal base commissions are computed on.
type CommissionPolicy string

const (
	// CommissionUpfrontOnly pays commission on the upfront cash portion.
	CommissionUpfrontOnly CommissionPolicy = "upfront_only"
	// CommissionFullValue pays commission on the full deal value.
	CommissionFullValue CommissionPolicy = "full_value"
)

// Valid reports whether the policy is a known value.
func (p CommissionPolicy) Valid() bool {
	return p == CommissionUpfrontOnly || p == CommissionFullValue
}

// DealEconomics describes the cash profile of a single closed deal.
// Percentages are expressed 0-100, GRR as a fraction in [0,1].
type DealEconomics struct {
	AvgDealValue float64 `json:"avg_deal_value"`
	UpfrontPct   float64 `json:"upfront_pct"`
	DeferredPct  float64 `json:"deferred_pct"`
	// DeferredMonths is how many months after close the deferred cash lands.
	DeferredMonths int `json:"deferred_months"`
	// GRR is the gross revenue retention applied to deferred cash.
	GRR              float64          `json:"grr"`
	CommissionPolicy CommissionPolicy `json:"commission_policy"`
	// GovCostPct is the government/transaction fee taken off gross revenue.
	GovCostPct float64 `json:"gov_cost_pct"`
	// ContractMonths is the period upfront cash is spread over when
	// computing payback months.
	ContractMonths int `json:"contract_months"`
}

// UpfrontCash is the cash collected at close for one deal.
func (d DealEconomics) UpfrontCash() float64 {
	return d.AvgDealValue * d.UpfrontPct / 100
}

// DeferredCash is the cash contractually due after DeferredMonths, before
// retention is applied.
func (d DealEconomics) DeferredCash() float64 {
	return d.AvgDealValue * d.DeferredPct / 100
}

// CommissionBase returns the per-deal amount commission percentages apply to,
// according to the commission policy.
func (d DealEconomics) CommissionBase() float64 {
	if d.CommissionPolicy == CommissionFullValue {
		return d.AvgDealValue
	}
	return d.UpfrontCash()
}

// Validate returns structural errors and non-fatal warnings. Aggressive but
// coherent configurations (e.g. split not summing to 100) warn instead of
// failing, so users can still model them deliberately.
func (d DealEconomics) Validate() (errs, warns []string) {
	if d.AvgDealValue <= 0 {
		errs = append(errs, fmt.Sprintf("deal: avg_deal_value must be > 0, got %g", d.AvgDealValue))
	}
	if d.UpfrontPct < 0 || d.UpfrontPct > 100 {
		errs = append(errs, fmt.Sprintf("deal: upfront_pct must be in [0,100], got %g", d.UpfrontPct))
	}
	if d.DeferredPct < 0 || d.DeferredPct > 100 {
		errs = append(errs, fmt.Sprintf("deal: deferred_pct must be in [0,100], got %g", d.DeferredPct))
	}
	if sum := d.UpfrontPct + d.DeferredPct; sum != 100 {
		warns = append(warns, fmt.Sprintf("deal: upfront_pct + deferred_pct = %g, expected 100", sum))
	}
	if d.DeferredMonths < 0 {
		errs = append(errs, fmt.Sprintf("deal: deferred_months must be >= 0, got %d", d.DeferredMonths))
	}
	if d.GRR < 0 || d.GRR > 1 {
		errs = append(errs, fmt.Sprintf("deal: grr must be in [0,1], got %g", d.GRR))
	}
	if !d.CommissionPolicy.Valid() {
		errs = append(errs, fmt.Sprintf("deal: unknown commission_policy %q", d.CommissionPolicy))
	}
	if d.GovCostPct < 0 || d.GovCostPct > 100 {
		errs = append(errs, fmt.Sprintf("deal: gov_cost_pct must be in [0,100], got %g", d.GovCostPct))
	}
	if d.ContractMonths < 0 {
		errs = append(errs, fmt.Sprintf("deal: contract_months must be >= 0, got %d", d.ContractMonths))
	} else if d.ContractMonths == 0 {
		warns = append(warns, "deal: contract_months is 0, payback months will be reported as N/A")
	}
	return errs, warns
}
