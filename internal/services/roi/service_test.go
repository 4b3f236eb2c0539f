package roi

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/genie/internal/catalog"
	"github.com/bobmcallan/genie/internal/models"
)

func TestCompound_TwelveMonthsAtTwoPercent(t *testing.T) {
	final := Compound(1000, 2.0, 12)
	assert.InDelta(t, 1268.24, final, 0.005)
	assert.InDelta(t, 26.8, ROIPct(1000, final), 0.05)
}

func TestCompound_MatchesClosedForm(t *testing.T) {
	for _, g := range []float64{0, 0.5, 2, 5} {
		for _, n := range Horizons {
			want := 1000 * math.Pow(1+g/100, float64(n))
			assert.InDelta(t, want, Compound(1000, g, n), 1e-9, "g=%v n=%d", g, n)
		}
	}
}

func TestSimulate_DefaultScenarios(t *testing.T) {
	results, err := Simulate(catalog.Default().ROIScenarios, 1000)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		require.Len(t, r.Points, len(Horizons))
		for i, p := range r.Points {
			assert.Equal(t, Horizons[i], p.Months)
		}
	}

	bold := results[1]
	assert.Equal(t, "Bold Adventurer", bold.Scenario.Name)
	assert.InDelta(t, 1020.0, bold.Points[0].Final, 1e-9)
	assert.InDelta(t, 1268.24, bold.Points[3].Final, 0.005)

	// horizons restart from the initial amount rather than chaining
	cautious := results[0]
	assert.InDelta(t, 1000*math.Pow(1.005, 3), cautious.Points[1].Final, 1e-9)
}

func TestSimulate_InvalidInitial(t *testing.T) {
	for _, v := range []float64{0, -1, math.NaN()} {
		_, err := Simulate(catalog.Default().ROIScenarios, v)
		assert.True(t, errors.Is(err, models.ErrInvalidAmount))
	}
}
