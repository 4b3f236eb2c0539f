package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/genie/internal/models"
)

func TestDefault_MatchesReferenceData(t *testing.T) {
	c := Default()

	require.Len(t, c.StakingPools, 5)
	assert.Equal(t, models.StakingPool{Name: "ETH 2.0", APY: 4.5, Risk: models.RiskLow, MinStake: 32}, c.StakingPools[0])
	assert.Equal(t, "Cosmos (ATOM)", c.StakingPools[4].Name)

	require.Len(t, c.YieldFarms, 5)
	assert.Equal(t, "Uniswap V3 ETH/USDC", c.YieldFarms[0].Name)
	assert.Equal(t, models.RiskHigh, c.YieldFarms[0].Risk)
	assert.Equal(t, "850M", c.YieldFarms[1].TVL)

	require.Len(t, c.InsurancePools, 3)
	assert.InDelta(t, 0.95, c.InsurancePools[0].CoverageRatio, 1e-12)
	assert.InDelta(t, 4.1, c.InsurancePools[2].PremiumPct, 1e-12)

	require.Len(t, c.ROIScenarios, 3)
	assert.Equal(t, "Bold Adventurer", c.ROIScenarios[1].Name)
	assert.InDelta(t, 2.0, c.ROIScenarios[1].MonthlyReturnPct, 1e-12)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.StakingPools, 5)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	doc := `
[[yield_farms]]
name = "Balancer WETH/WBTC"
apy = 11.0
risk = "medium"
tvl = "400M"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.YieldFarms, 1)
	assert.Equal(t, "Balancer WETH/WBTC", c.YieldFarms[0].Name)
	assert.Len(t, c.StakingPools, 5)
	assert.Len(t, c.InsurancePools, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestParse_RejectsUnknownRisk(t *testing.T) {
	doc := `
[[staking_pools]]
name = "X"
apy = 1
risk = "reckless"
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reckless")
}

func TestParse_RejectsUnknownField(t *testing.T) {
	doc := `
[[staking_pools]]
name = "X"
apy = 1
risk = "low"
lockup = 30
`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cat  models.Catalog
	}{
		{"empty name", models.Catalog{StakingPools: []models.StakingPool{{APY: 1, Risk: models.RiskLow}}}},
		{"duplicate name", models.Catalog{YieldFarms: []models.YieldFarm{
			{Name: "A", APY: 1, Risk: models.RiskLow},
			{Name: "A", APY: 2, Risk: models.RiskLow},
		}}},
		{"negative apy", models.Catalog{StakingPools: []models.StakingPool{{Name: "A", APY: -1, Risk: models.RiskLow}}}},
		{"missing risk", models.Catalog{YieldFarms: []models.YieldFarm{{Name: "A", APY: 1}}}},
		{"coverage above one", models.Catalog{InsurancePools: []models.InsurancePool{{Name: "A", CoverageRatio: 1.2, PremiumPct: 1, Risk: models.RiskLow}}}},
		{"monthly return wipes out", models.Catalog{ROIScenarios: []models.ROIScenario{{Name: "A", MonthlyReturnPct: -100}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cat)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
		})
	}

	assert.NoError(t, Validate(Default()))
	assert.Error(t, Validate(nil))
}
