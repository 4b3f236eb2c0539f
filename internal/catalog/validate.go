package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/bobmcallan/genie/internal/models"
)

// ErrInvalidCatalog wraps every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks names, rates and tiers of every catalog entry.
func Validate(c *models.Catalog) error {
	if c == nil {
		return fmt.Errorf("%w: nil catalog", ErrInvalidCatalog)
	}

	var errs []error
	seen := make(map[string]bool)
	for i, p := range c.StakingPools {
		errs = append(errs, checkName("staking_pools", i, p.Name, seen))
		errs = append(errs, checkRate("staking_pools", p.Name, "apy", p.APY))
		errs = append(errs, checkRate("staking_pools", p.Name, "min_stake", p.MinStake))
		errs = append(errs, checkRisk("staking_pools", p.Name, p.Risk))
	}

	seen = make(map[string]bool)
	for i, f := range c.YieldFarms {
		errs = append(errs, checkName("yield_farms", i, f.Name, seen))
		errs = append(errs, checkRate("yield_farms", f.Name, "apy", f.APY))
		errs = append(errs, checkRisk("yield_farms", f.Name, f.Risk))
	}

	seen = make(map[string]bool)
	for i, p := range c.InsurancePools {
		errs = append(errs, checkName("insurance_pools", i, p.Name, seen))
		errs = append(errs, checkRate("insurance_pools", p.Name, "premium", p.PremiumPct))
		errs = append(errs, checkRisk("insurance_pools", p.Name, p.Risk))
		if math.IsNaN(p.CoverageRatio) || p.CoverageRatio < 0 || p.CoverageRatio > 1 {
			errs = append(errs, fmt.Errorf("%w: insurance_pools %q: coverage_ratio %v outside [0,1]", ErrInvalidCatalog, p.Name, p.CoverageRatio))
		}
	}

	seen = make(map[string]bool)
	for i, s := range c.ROIScenarios {
		errs = append(errs, checkName("roi_scenarios", i, s.Name, seen))
		if math.IsNaN(s.MonthlyReturnPct) || math.IsInf(s.MonthlyReturnPct, 0) || s.MonthlyReturnPct <= -100 {
			errs = append(errs, fmt.Errorf("%w: roi_scenarios %q: monthly_return %v must be finite and above -100", ErrInvalidCatalog, s.Name, s.MonthlyReturnPct))
		}
	}

	return errors.Join(errs...)
}

func checkName(list string, idx int, name string, seen map[string]bool) error {
	if name == "" {
		return fmt.Errorf("%w: %s[%d]: name is empty", ErrInvalidCatalog, list, idx)
	}
	if seen[name] {
		return fmt.Errorf("%w: %s: duplicate name %q", ErrInvalidCatalog, list, name)
	}
	seen[name] = true
	return nil
}

func checkRate(list, name, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s %q: %s %v must be a non-negative number", ErrInvalidCatalog, list, name, field, v)
	}
	return nil
}

func checkRisk(list, name string, r models.RiskTier) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %s %q: risk %q", ErrInvalidCatalog, list, name, r)
	}
	return nil
}
