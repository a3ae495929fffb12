package engine

import "gtm-engine/internal/core/domain"

// CalculateCommissionPools distributes commissions for the period's sales
// across the closer, setter and manager roles. The per-deal base follows the
// deal's commission policy. Per-person amounts are 0 when a role has no
// headcount; OTE attainment is nil in that case.
func CalculateCommissionPools(sales float64, team domain.TeamStructure, deal domain.DealEconomics) domain.CommissionPools {
	base := deal.CommissionBase()
	closer := rolePool(sales, base, team.Closer)
	setter := rolePool(sales, base, team.Setter)
	manager := rolePool(sales, base, team.Manager)
	return domain.CommissionPools{
		Closer:  closer,
		Setter:  setter,
		Manager: manager,
		Total:   closer.Pool + setter.Pool + manager.Pool,
	}
}

func rolePool(sales, base float64, rc domain.RoleComp) domain.RolePool {
	p := domain.RolePool{Pool: sales * base * rc.CommissionPct / 100}
	if rc.Count > 0 {
		p.PerPerson = p.Pool / float64(rc.Count)
		// Attainment compares actual pay (base + commission) against OTE
		// (base + variable target), both monthly.
		ote := rc.BaseAnnual/12 + rc.VariableAnnual/12
		if ote > 0 {
			v := (rc.BaseAnnual/12 + p.PerPerson) / ote * 100
			p.OTEAttainment = &v
		}
	}
	return p
}

// CalculatePnL builds the monthly P&L waterfall. Government fees are
// deducted from gross revenue before COGS and OpEx: transaction fees shrink
// the revenue base every cost is measured against.
func CalculatePnL(grossRevenue, teamBaseMonthly, commissions, marketingSpend, otherOpex, govCostPct float64) domain.PnL {
	p := domain.PnL{
		GrossRevenue:   grossRevenue,
		MarketingSpend: marketingSpend,
		OtherOpex:      otherOpex,
	}
	p.GovFees = grossRevenue * govCostPct / 100
	p.NetRevenue = grossRevenue - p.GovFees
	p.COGS = teamBaseMonthly + commissions
	p.GrossProfit = p.NetRevenue - p.COGS
	p.Opex = marketingSpend + otherOpex
	p.EBITDA = p.GrossProfit - p.Opex
	p.GrossMargin = safeDiv(p.GrossProfit, p.NetRevenue)
	p.EBITDAMargin = safeDiv(p.EBITDA, p.NetRevenue)
	return p
}

// CalculateUnitEconomics derives LTV, LTV:CAC and payback from the deal
// profile and an already-computed CAC. LTV counts upfront cash plus the
// retained share of deferred cash.
func CalculateUnitEconomics(deal domain.DealEconomics, cac float64) domain.UnitEconomics {
	ue := domain.UnitEconomics{
		LTV: deal.UpfrontCash() + deal.DeferredCash()*deal.GRR,
		CAC: cac,
	}
	if cac > 0 {
		ratio := ue.LTV / cac
		ue.LTVToCAC = &ratio
	}
	if deal.ContractMonths > 0 {
		monthlyUpfront := deal.UpfrontCash() / float64(deal.ContractMonths)
		if monthlyUpfront > 0 {
			months := cac / monthlyUpfront
			ue.PaybackMonths = &months
		}
	}
	return ue
}

// ComputeModel runs the full pipeline: funnel aggregation, commission
// pools, P&L and unit economics. It assumes inputs have already passed
// ValidateInputs.
func ComputeModel(in domain.ModelInputs) domain.ModelResult {
	perChannel, total := AggregateChannels(in.Channels, in.Deal)
	pools := CalculateCommissionPools(total.Sales, in.Team, in.Deal)
	pnl := CalculatePnL(
		total.Revenue,
		in.Team.TotalBaseMonthly(),
		pools.Total,
		total.Spend,
		in.OtherOpexMonthly,
		in.Deal.GovCostPct,
	)
	ue := CalculateUnitEconomics(in.Deal, total.BlendedCAC)
	return domain.ModelResult{
		PerChannel:    perChannel,
		Total:         total,
		Pools:         pools,
		PnL:           pnl,
		UnitEconomics: ue,
	}
}
