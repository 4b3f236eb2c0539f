// Package models defines data structures for Genie
package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRiskTier is returned when a risk label is not low, medium or high.
var ErrUnknownRiskTier = errors.New("unknown risk tier")

// RiskTier categorises instruments and the user's appetite for risk.
// It is a display filter only, not a probabilistic model.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// RiskTiers lists every tier in ascending order.
var RiskTiers = []RiskTier{RiskLow, RiskMedium, RiskHigh}

// ParseRiskTier parses a tier label case-insensitively.
func ParseRiskTier(s string) (RiskTier, error) {
	t := RiskTier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRiskTier, s)
	}
	return t, nil
}

// Valid reports whether t is one of the known tiers.
func (t RiskTier) Valid() bool {
	return t.rank() > 0
}

func (t RiskTier) rank() int {
	switch t {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	}
	return 0
}

// Includes reports whether an instrument of tier other is acceptable
// to a user with appetite t (low includes low, medium includes low and
// medium, high includes everything).
func (t RiskTier) Includes(other RiskTier) bool {
	return other.Valid() && other.rank() <= t.rank()
}

// Title returns the capitalised label, e.g. "Medium".
func (t RiskTier) Title() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Emoji returns the traffic-light marker shown next to a tier.
func (t RiskTier) Emoji() string {
	switch t {
	case RiskLow:
		return "🟢"
	case RiskMedium:
		return "🟡"
	case RiskHigh:
		return "🔴"
	}
	return "⚪"
}

// UnmarshalText lets TOML and env decoders parse tiers directly.
func (t *RiskTier) UnmarshalText(b []byte) error {
	parsed, err := ParseRiskTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
