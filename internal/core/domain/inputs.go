package domain

// ModelInputs is the complete input to one model computation. Every value
// that can influence engine output lives here explicitly; the engine reads
// no ambient state, which is what makes a hash of this struct a sound
// cache key for callers.
type ModelInputs struct {
	Channels []Channel     `json:"channels"`
	Deal     DealEconomics `json:"deal"`
	Team     TeamStructure `json:"team"`
	// OtherOpexMonthly covers rent, software and similar operating costs
	// outside of marketing spend and payroll.
	OtherOpexMonthly float64 `json:"other_opex_monthly"`
}
