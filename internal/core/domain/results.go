package domain

// Result types returned by the engine. Ratio metrics that become meaningless
// when their denominator is zero (LTV:CAC, OTE attainment, payback, delta
// percentages) are pointers: nil serializes as JSON null and should be
// rendered "N/A", never as a real zero. Blended rates and margins with a
// zero denominator are reported as plain 0.

// ChannelMetrics is the funnel outcome for a single channel.
type ChannelMetrics struct {
	ChannelID string `json:"channel_id"`
	Name      string `json:"name"`

	Leads             float64 `json:"leads"`
	Contacts          float64 `json:"contacts"`
	MeetingsScheduled float64 `json:"meetings_scheduled"`
	MeetingsHeld      float64 `json:"meetings_held"`
	Sales             float64 `json:"sales"`

	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
	CAC     float64 `json:"cac"`
	ROAS    float64 `json:"roas"`
}

// GtmAggregate is the field-wise sum of metrics across enabled channels,
// plus blended rates derived from the totals.
type GtmAggregate struct {
	Leads             float64 `json:"leads"`
	Contacts          float64 `json:"contacts"`
	MeetingsScheduled float64 `json:"meetings_scheduled"`
	MeetingsHeld      float64 `json:"meetings_held"`
	Sales             float64 `json:"sales"`
	Spend             float64 `json:"spend"`
	Revenue           float64 `json:"revenue"`

	BlendedCloseRate float64 `json:"blended_close_rate"`
	BlendedCAC       float64 `json:"blended_cac"`
	BlendedROAS      float64 `json:"blended_roas"`
}

// RolePool is one role's commission pool for the period. PerPerson is 0
// when the role has no headcount; OTEAttainment (percent of on-target
// earnings reached) is nil in that case.
type RolePool struct {
	Pool          float64  `json:"pool"`
	PerPerson     float64  `json:"per_person"`
	OTEAttainment *float64 `json:"ote_attainment"`
}

// CommissionPools holds per-role pools and the period total.
type CommissionPools struct {
	Closer  RolePool `json:"closer"`
	Setter  RolePool `json:"setter"`
	Manager RolePool `json:"manager"`
	Total   float64  `json:"total"`
}

// PnL is the monthly profit and loss waterfall. Government fees come off
// gross revenue before COGS and OpEx; every line depends only on lines
// above it.
type PnL struct {
	GrossRevenue   float64 `json:"gross_revenue"`
	GovFees        float64 `json:"gov_fees"`
	NetRevenue     float64 `json:"net_revenue"`
	COGS           float64 `json:"cogs"`
	GrossProfit    float64 `json:"gross_profit"`
	MarketingSpend float64 `json:"marketing_spend"`
	OtherOpex      float64 `json:"other_opex"`
	Opex           float64 `json:"opex"`
	EBITDA         float64 `json:"ebitda"`
	GrossMargin    float64 `json:"gross_margin"`
	EBITDAMargin   float64 `json:"ebitda_margin"`
}

// UnitEconomics summarizes per-customer economics.
type UnitEconomics struct {
	LTV           float64  `json:"ltv"`
	CAC           float64  `json:"cac"`
	LTVToCAC      *float64 `json:"ltv_to_cac"`
	PaybackMonths *float64 `json:"payback_months"`
}

// ModelResult is the complete output of one model computation.
type ModelResult struct {
	PerChannel    []ChannelMetrics `json:"per_channel"`
	Total         GtmAggregate     `json:"total"`
	Pools         CommissionPools  `json:"pools"`
	PnL           PnL              `json:"pnl"`
	UnitEconomics UnitEconomics    `json:"unit_economics"`
	Warnings      []string         `json:"warnings,omitempty"`
}

// ReverseResult reports the upstream volumes required to hit a downstream
// target. When Feasible is false the numeric fields are zero and Reason
// explains which rate made the target unreachable.
type ReverseResult struct {
	Feasible bool   `json:"feasible"`
	Reason   string `json:"reason,omitempty"`

	SalesNeeded             float64 `json:"sales_needed"`
	MeetingsHeldNeeded      float64 `json:"meetings_held_needed"`
	MeetingsScheduledNeeded float64 `json:"meetings_scheduled_needed"`
	ContactsNeeded          float64 `json:"contacts_needed"`
	LeadsNeeded             float64 `json:"leads_needed"`
}

// MetricDelta is one metric's movement between two scenarios. DeltaPct is
// nil when the baseline value is zero.
type MetricDelta struct {
	Baseline float64  `json:"baseline"`
	Scenario float64  `json:"scenario"`
	Delta    float64  `json:"delta"`
	DeltaPct *float64 `json:"delta_pct"`
}
