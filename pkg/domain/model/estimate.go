package model

import "github.com/secmon-lab/threatcalc/pkg/domain/types"

// Breakdown is the additive contribution of each attack path to an estimate
type Breakdown struct {
	Detected       float64 `json:"detected"`
	UndetectedLow  float64 `json:"undetected_low"`
	UndetectedHigh float64 `json:"undetected_high"`
}

// Total returns the sum of all path contributions
func (b Breakdown) Total() float64 {
	return b.Detected + b.UndetectedLow + b.UndetectedHigh
}

// RiskEstimate is a success probability in [0,1] with an optional path breakdown
type RiskEstimate struct {
	Probability float64    `json:"probability"`
	Breakdown   *Breakdown `json:"breakdown,omitempty"`
}

// Tier classifies the estimate
func (e RiskEstimate) Tier() types.RiskTier {
	return types.Classify(e.Probability)
}
