package domain

import "strings"

// Tier names a support priority level.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPriority Tier = "priority"
	TierExpress  Tier = "express"
)

// TierConfig is the display metadata for a tier.
type TierConfig struct {
	Key      Tier
	Price    string
	Headline string
	SLA      string
	Badge    string
	Icon     string
	Gradient string

	// Landing page card copy.
	Title       string
	Description string
	CTA         string
	Highlight   string
}

var tierOrder = []Tier{TierStandard, TierPriority, TierExpress}

var tiers = map[Tier]TierConfig{
	TierStandard: {
		Key:         TierStandard,
		Price:       "Free",
		Headline:    "Standard Support Ticket",
		SLA:         "Best-effort response within 48 hours.",
		Badge:       "Standard Queue",
		Icon:        "🧭",
		Gradient:    "linear-gradient(135deg, rgba(20,241,149,0.35), rgba(153,69,255,0.2))",
		Title:       "Standard Support",
		Description: "Free ticket with best-effort response within 48 hours.",
		CTA:         "Submit Standard Ticket",
		Highlight:   "Best for general issues",
	},
	TierPriority: {
		Key:         TierPriority,
		Price:       "$1 USDC",
		Headline:    "Priority Support Ticket",
		SLA:         "Guaranteed response within 12 hours.",
		Badge:       "Priority Response",
		Icon:        "⚡️",
		Gradient:    "linear-gradient(135deg, rgba(255,196,67,0.4), rgba(153,69,255,0.25))",
		Title:       "Priority Support",
		Description: "$1 USDC • Guaranteed response within 12 hours.",
		CTA:         "Submit Priority Ticket",
		Highlight:   "Guaranteed 12h response",
	},
	TierExpress: {
		Key:         TierExpress,
		Price:       "$5 USDC",
		Headline:    "Express Support Ticket",
		SLA:         "Direct escalation with response within 2 hours.",
		Badge:       "Express Escalation",
		Icon:        "🚀",
		Gradient:    "linear-gradient(135deg, rgba(255,82,124,0.45), rgba(20,241,149,0.25))",
		Title:       "Express Support",
		Description: "$5 USDC • Direct escalation, response within 2 hours.",
		CTA:         "Submit Express Ticket",
		Highlight:   "Fastest 2h turnaround",
	},
}

// LookupTier returns the configuration for key. Matching ignores case and
// surrounding whitespace.
func LookupTier(key string) (TierConfig, bool) {
	cfg, ok := tiers[Tier(strings.ToLower(strings.TrimSpace(key)))]
	return cfg, ok
}

// Tiers returns every configured tier in display order.
func Tiers() []TierConfig {
	out := make([]TierConfig, 0, len(tierOrder))
	for _, t := range tierOrder {
		out = append(out, tiers[t])
	}
	return out
}

// IsFree reports whether tickets at this tier need no payment.
func (c TierConfig) IsFree() bool {
	return c.Key == TierStandard
}
