package insurance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/genie/internal/catalog"
	"github.com/bobmcallan/genie/internal/models"
)

func TestSimulate_DefaultPools(t *testing.T) {
	quotes, err := Simulate(catalog.Default().InsurancePools, 10000)
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	nexus := quotes[0]
	assert.Equal(t, "Nexus Mutual", nexus.Pool.Name)
	assert.InDelta(t, 260.0, nexus.AnnualPremium, 1e-9)
	assert.InDelta(t, 9500.0, nexus.Covered, 1e-9)
	assert.InDelta(t, 500.0, nexus.Uncovered, 1e-9)
	assert.InDelta(t, 260.0/12, nexus.MonthlyCost, 1e-12)
}

func TestSimulate_UncoveredNeverNegative(t *testing.T) {
	pools := []models.InsurancePool{
		{Name: "None", CoverageRatio: 0, PremiumPct: 1, Risk: models.RiskLow},
		{Name: "Half", CoverageRatio: 0.5, PremiumPct: 1, Risk: models.RiskLow},
		{Name: "Full", CoverageRatio: 1, PremiumPct: 1, Risk: models.RiskLow},
	}
	for _, v := range []float64{0.01, 1, 1234.56, 1e9} {
		quotes, err := Simulate(pools, v)
		require.NoError(t, err)
		for _, q := range quotes {
			assert.GreaterOrEqual(t, q.Uncovered, 0.0, "%s at %v", q.Pool.Name, v)
			assert.InDelta(t, v-v*q.Pool.CoverageRatio, q.Uncovered, 1e-6)
		}
	}
}

func TestSimulate_InvalidValue(t *testing.T) {
	_, err := Simulate(catalog.Default().InsurancePools, 0)
	assert.True(t, errors.Is(err, models.ErrInvalidAmount))
}

func TestAssessment(t *testing.T) {
	assert.Contains(t, Assessment(models.RiskLow), "steadfast")
	assert.Contains(t, Assessment(models.RiskHigh), "affordable")
}
