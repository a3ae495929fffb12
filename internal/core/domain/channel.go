package domain

import "fmt"

// CostMethod determines which funnel stage a channel's price applies to.
type CostMethod string

const (
	// CostPerLead charges price for every lead entering the funnel.
	CostPerLead CostMethod = "per_lead"
	// CostPerMeeting charges price for every meeting actually held.
	CostPerMeeting CostMethod = "per_meeting"
	// CostPerAcquisition charges price for every closed sale.
	CostPerAcquisition CostMethod = "per_acquisition"
	// CostFixedBudget spends price as a flat budget regardless of volume.
	CostFixedBudget CostMethod = "fixed_budget"
)

// Valid reports whether the cost method is one of the four known values.
func (m CostMethod) Valid() bool {
	switch m {
	case CostPerLead, CostPerMeeting, CostPerAcquisition, CostFixedBudget:
		return true
	}
	return false
}

// Channel represents one marketing or sales source feeding the funnel.
// Rates are fractions in [0,1]. Price is interpreted according to
// CostMethod; only one interpretation is ever active.
type Channel struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MonthlyLeads float64 `json:"monthly_leads"`

	ContactRate float64 `json:"contact_rate"`
	MeetingRate float64 `json:"meeting_rate"`
	ShowUpRate  float64 `json:"show_up_rate"`
	CloseRate   float64 `json:"close_rate"`

	CostMethod CostMethod `json:"cost_method"`
	Price      float64    `json:"price"`

	// DealValueOverride replaces DealEconomics.AvgDealValue for revenue
	// attribution on this channel when set.
	DealValueOverride *float64 `json:"deal_value_override,omitempty"`

	Enabled bool `json:"enabled"`
}

// Validate returns a list of human-readable issues. An empty list means the
// channel is structurally valid. All issues are collected so a caller can
// surface them at once.
func (c Channel) Validate() []string {
	var issues []string
	if c.ID == "" {
		issues = append(issues, "channel id must not be empty")
	}
	if c.MonthlyLeads < 0 {
		issues = append(issues, fmt.Sprintf("channel %q: monthly_leads must be >= 0, got %g", c.ID, c.MonthlyLeads))
	}
	rates := []struct {
		name string
		v    float64
	}{
		{"contact_rate", c.ContactRate},
		{"meeting_rate", c.MeetingRate},
		{"show_up_rate", c.ShowUpRate},
		{"close_rate", c.CloseRate},
	}
	for _, r := range rates {
		if r.v < 0 || r.v > 1 {
			issues = append(issues, fmt.Sprintf("channel %q: %s must be in [0,1], got %g", c.ID, r.name, r.v))
		}
	}
	if !c.CostMethod.Valid() {
		issues = append(issues, fmt.Sprintf("channel %q: unknown cost_method %q", c.ID, c.CostMethod))
	}
	if c.Price < 0 {
		issues = append(issues, fmt.Sprintf("channel %q: price must be >= 0, got %g", c.ID, c.Price))
	}
	if c.DealValueOverride != nil && *c.DealValueOverride <= 0 {
		issues = append(issues, fmt.Sprintf("channel %q: deal_value_override must be > 0, got %g", c.ID, *c.DealValueOverride))
	}
	return issues
}
