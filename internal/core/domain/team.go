package domain

import "fmt"

// RoleComp is the pay plan for one role: headcount, annual base, annual
// variable target and the commission percentage applied per deal.
type RoleComp struct {
	Count          int     `json:"count"`
	BaseAnnual     float64 `json:"base_annual"`
	VariableAnnual float64 `json:"variable_annual"`
	CommissionPct  float64 `json:"commission_pct"`
}

// TeamStructure is the sales team headcount and compensation rules.
// Bench members draw base salary but earn no commission.
type TeamStructure struct {
	Closer  RoleComp `json:"closer"`
	Setter  RoleComp `json:"setter"`
	Manager RoleComp `json:"manager"`
	Bench   RoleComp `json:"bench"`
}

// TotalBaseAnnual sums annual base salary across all roles.
func (t TeamStructure) TotalBaseAnnual() float64 {
	total := 0.0
	for _, r := range t.roles() {
		total += float64(r.comp.Count) * r.comp.BaseAnnual
	}
	return total
}

// TotalBaseMonthly is the monthly base payroll, the fixed component of COGS.
func (t TeamStructure) TotalBaseMonthly() float64 {
	return t.TotalBaseAnnual() / 12
}

// Validate returns structural errors and non-fatal warnings. Commission
// percentages above 100 are allowed but flagged: business users may model
// aggressive structures on purpose.
func (t TeamStructure) Validate() (errs, warns []string) {
	commissionSum := 0.0
	for _, r := range t.roles() {
		if r.comp.Count < 0 {
			errs = append(errs, fmt.Sprintf("team: %s count must be >= 0, got %d", r.name, r.comp.Count))
		}
		if r.comp.BaseAnnual < 0 {
			errs = append(errs, fmt.Sprintf("team: %s base_annual must be >= 0, got %g", r.name, r.comp.BaseAnnual))
		}
		if r.comp.VariableAnnual < 0 {
			errs = append(errs, fmt.Sprintf("team: %s variable_annual must be >= 0, got %g", r.name, r.comp.VariableAnnual))
		}
		if r.comp.CommissionPct < 0 {
			errs = append(errs, fmt.Sprintf("team: %s commission_pct must be >= 0, got %g", r.name, r.comp.CommissionPct))
		} else if r.comp.CommissionPct > 100 {
			warns = append(warns, fmt.Sprintf("team: %s commission_pct is %g, above 100%% of the commission base", r.name, r.comp.CommissionPct))
		}
		commissionSum += r.comp.CommissionPct
	}
	if commissionSum > 100 {
		warns = append(warns, fmt.Sprintf("team: combined commission percentages sum to %g%% of the commission base", commissionSum))
	}
	return errs, warns
}

type namedRole struct {
	name string
	comp RoleComp
}

func (t TeamStructure) roles() []namedRole {
	return []namedRole{
		{"closer", t.Closer},
		{"setter", t.Setter},
		{"manager", t.Manager},
		{"bench", t.Bench},
	}
}
