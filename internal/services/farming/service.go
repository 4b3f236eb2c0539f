// Package farming ranks yield farms for a risk tier and projects simple
// returns for a chosen farm.
package farming

import (
	"fmt"
	"math"
	"sort"

	"github.com/bobmcallan/genie/internal/models"
	"github.com/bobmcallan/genie/internal/services/staking"
)

// Periods are the day counts shown in a harvest forecast.
var Periods = []int{1, 7, 30, 90, 365}

// Forecast is the simple-interest outcome after Days days.
type Forecast struct {
	Days   int
	Profit float64
	Total  float64
}

// Suitable returns the farms a user with tier may see, ordered by APY
// from highest to lowest. Farms with equal APY keep catalog order.
func Suitable(farms []models.YieldFarm, tier models.RiskTier) []models.YieldFarm {
	out := make([]models.YieldFarm, 0, len(farms))
	for _, f := range farms {
		if tier.Includes(f.Risk) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].APY > out[j].APY
	})
	return out
}

// Project forecasts non-compounding profit on amount across Periods.
func Project(farm models.YieldFarm, amount float64) ([]Forecast, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, fmt.Errorf("amount %v: %w", amount, models.ErrInvalidAmount)
	}

	out := make([]Forecast, 0, len(Periods))
	for _, d := range Periods {
		profit := staking.Reward(amount, farm.APY, d)
		out = append(out, Forecast{Days: d, Profit: profit, Total: amount + profit})
	}
	return out, nil
}

// Whisper is the advice line shown for a farm of the given risk.
func Whisper(r models.RiskTier) string {
	switch r {
	case models.RiskLow:
		return "A tranquil stream of steady, predictable returns!"
	case models.RiskMedium:
		return "A river of opportunity with a fine balance of risk and reward."
	default:
		return "A tempest of high risk and high reward - watch the tides closely!"
	}
}
