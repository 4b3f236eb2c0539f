// Package staking projects simple (non-compounding) staking rewards.
package staking

import (
	"fmt"
	"math"

	"github.com/bobmcallan/genie/internal/models"
)

// DaysPerYear is the day count used to turn an APY into a daily rate.
const DaysPerYear = 365

// Projection is the outcome of staking a principal in one pool.
type Projection struct {
	Pool      models.StakingPool
	Principal float64
	Days      int
	Reward    float64
	Final     float64
}

// Result holds the projections for every eligible pool, plus the pools
// the principal was too small to enter.
type Result struct {
	Principal    float64
	Days         int
	Projections  []Projection
	BelowMinimum []models.StakingPool
}

// Eligible returns the pools suited to tier: pools of exactly that tier,
// or every pool when the tier is high. When nothing matches the whole
// list is returned so the user always has something to look at.
func Eligible(pools []models.StakingPool, tier models.RiskTier) []models.StakingPool {
	var out []models.StakingPool
	for _, p := range pools {
		if tier == models.RiskHigh || p.Risk == tier {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return pools
	}
	return out
}

// Reward returns principal × apy/365/100 × days, unrounded.
func Reward(principal, apy float64, days int) float64 {
	dailyRate := apy / DaysPerYear / 100
	return principal * dailyRate * float64(days)
}

// Project computes rewards for each pool whose minimum stake the
// principal meets. Pools are kept in their given order.
func Project(pools []models.StakingPool, principal float64, days int) (*Result, error) {
	if math.IsNaN(principal) || math.IsInf(principal, 0) || principal <= 0 {
		return nil, fmt.Errorf("principal %v: %w", principal, models.ErrInvalidAmount)
	}
	if days <= 0 {
		return nil, fmt.Errorf("days %d: %w", days, models.ErrInvalidDuration)
	}

	result := &Result{Principal: principal, Days: days}
	for _, p := range pools {
		if principal < p.MinStake {
			result.BelowMinimum = append(result.BelowMinimum, p)
			continue
		}
		reward := Reward(principal, p.APY, days)
		result.Projections = append(result.Projections, Projection{
			Pool:      p,
			Principal: principal,
			Days:      days,
			Reward:    reward,
			Final:     principal + reward,
		})
	}
	return result, nil
}
