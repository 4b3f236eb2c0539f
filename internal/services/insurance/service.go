// Package insurance breaks a portfolio value down into premium and cover
// for each insurance pool.
package insurance

import (
	"fmt"
	"math"

	"github.com/bobmcallan/genie/internal/models"
)

// Quote is the cost and cover one pool offers for a portfolio.
type Quote struct {
	Pool          models.InsurancePool
	Value         float64
	AnnualPremium float64
	Covered       float64
	Uncovered     float64
	MonthlyCost   float64
}

// Simulate quotes every pool for value. No risk filtering is applied.
func Simulate(pools []models.InsurancePool, value float64) ([]Quote, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return nil, fmt.Errorf("portfolio value %v: %w", value, models.ErrInvalidAmount)
	}

	quotes := make([]Quote, 0, len(pools))
	for _, p := range pools {
		annual := value * (p.PremiumPct / 100)
		covered := value * p.CoverageRatio
		quotes = append(quotes, Quote{
			Pool:          p,
			Value:         value,
			AnnualPremium: annual,
			Covered:       covered,
			Uncovered:     value - covered,
			MonthlyCost:   annual / 12,
		})
	}
	return quotes, nil
}

// Assessment is the verdict shown for a pool of the given risk.
func Assessment(r models.RiskTier) string {
	switch r {
	case models.RiskLow:
		return "The most steadfast shield, with a lower risk of claim denial."
	case models.RiskMedium:
		return "A well-balanced shield of cost and reliability."
	default:
		return "A more affordable shield, but with a higher risk should you need to make a claim."
	}
}
