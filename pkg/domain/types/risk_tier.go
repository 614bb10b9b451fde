package types

import "fmt"

// RiskTier represents the ordinal classification of a success probability
type RiskTier string

const (
	RiskTierLow         RiskTier = "LOW"
	RiskTierModerate    RiskTier = "MODERATE"
	RiskTierSignificant RiskTier = "SIGNIFICANT"
	RiskTierHigh        RiskTier = "HIGH"
)

// Lower bounds (inclusive) of each tier above Low
const (
	ModerateThreshold    = 0.01
	SignificantThreshold = 0.05
	HighThreshold        = 0.15
)

// AllRiskTiers returns all risk tiers in ascending order of severity
func AllRiskTiers() []RiskTier {
	return []RiskTier{
		RiskTierLow,
		RiskTierModerate,
		RiskTierSignificant,
		RiskTierHigh,
	}
}

// Classify maps a probability in [0,1] to its risk tier. Values outside the
// range are not rejected here; callers validate probabilities beforehand.
func Classify(probability float64) RiskTier {
	switch {
	case probability < ModerateThreshold:
		return RiskTierLow
	case probability < SignificantThreshold:
		return RiskTierModerate
	case probability < HighThreshold:
		return RiskTierSignificant
	default:
		return RiskTierHigh
	}
}

// IsValid checks if the risk tier is valid
func (t RiskTier) IsValid() bool {
	switch t {
	case RiskTierLow,
		RiskTierModerate,
		RiskTierSignificant,
		RiskTierHigh:
		return true
	default:
		return false
	}
}

// Rank returns the ordinal position of the tier, 0 for Low. Invalid tiers return -1.
func (t RiskTier) Rank() int {
	for i, tier := range AllRiskTiers() {
		if tier == t {
			return i
		}
	}
	return -1
}

// String returns the string representation of the risk tier
func (t RiskTier) String() string {
	return string(t)
}

// DisplayName returns the human readable name, e.g. "Significant"
func (t RiskTier) DisplayName() string {
	switch t {
	case RiskTierLow:
		return "Low"
	case RiskTierModerate:
		return "Moderate"
	case RiskTierSignificant:
		return "Significant"
	case RiskTierHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Label returns the display name prefixed with the tier's traffic light marker
func (t RiskTier) Label() string {
	switch t {
	case RiskTierLow:
		return "🟢 Low"
	case RiskTierModerate:
		return "🟡 Moderate"
	case RiskTierSignificant:
		return "🟠 Significant"
	case RiskTierHigh:
		return "🔴 High"
	default:
		return "Unknown"
	}
}

// ParseRiskTier parses a string into a RiskTier
func ParseRiskTier(s string) (RiskTier, error) {
	tier := RiskTier(s)
	if !tier.IsValid() {
		return "", fmt.Errorf("invalid risk tier: %s", s)
	}
	return tier, nil
}
