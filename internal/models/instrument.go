package models

// StakingPool is a proof-of-stake network offering a fixed illustrative APY.
type StakingPool struct {
	Name     string   `toml:"name"`
	APY      float64  `toml:"apy"` // Annual percentage yield, e.g. 4.5 for 4.5%
	Risk     RiskTier `toml:"risk"`
	MinStake float64  `toml:"min_stake"` // Minimum stake in tokens
}

// YieldFarm is a liquidity pool paying an illustrative APY.
type YieldFarm struct {
	Name string   `toml:"name"`
	APY  float64  `toml:"apy"`
	Risk RiskTier `toml:"risk"`
	TVL  string   `toml:"tvl"` // Total value locked, descriptive only ("2.1B")
}

// InsurancePool is a cover provider charging an annual premium for a
// fraction of the insured value.
type InsurancePool struct {
	Name          string   `toml:"name"`
	CoverageRatio float64  `toml:"coverage_ratio"` // 0..1
	PremiumPct    float64  `toml:"premium"`        // Annual premium as a percentage of value
	Risk          RiskTier `toml:"risk"`
}

// ROIScenario is a named strategy profile with a fixed monthly growth rate.
type ROIScenario struct {
	Name             string  `toml:"name"`
	MonthlyReturnPct float64 `toml:"monthly_return"`
	Volatility       float64 `toml:"volatility"` // descriptive only
}

// Catalog is the static reference table read by every calculator.
// Lists keep their declaration order.
type Catalog struct {
	StakingPools   []StakingPool   `toml:"staking_pools"`
	YieldFarms     []YieldFarm     `toml:"yield_farms"`
	InsurancePools []InsurancePool `toml:"insurance_pools"`
	ROIScenarios   []ROIScenario   `toml:"roi_scenarios"`
}
