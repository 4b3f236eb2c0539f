package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRiskTier(t *testing.T) {
	tests := []struct {
		in   string
		want RiskTier
	}{
		{"low", RiskLow},
		{"Medium", RiskMedium},
		{"  HIGH ", RiskHigh},
	}
	for _, tt := range tests {
		got, err := ParseRiskTier(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseRiskTier("extreme")
	assert.True(t, errors.Is(err, ErrUnknownRiskTier))
}

func TestRiskTier_IncludesIsMonotonic(t *testing.T) {
	for _, other := range RiskTiers {
		assert.True(t, RiskHigh.Includes(other), "high should include %s", other)
	}
	assert.True(t, RiskLow.Includes(RiskLow))
	assert.False(t, RiskLow.Includes(RiskMedium))
	assert.False(t, RiskLow.Includes(RiskHigh))
	assert.True(t, RiskMedium.Includes(RiskLow))
	assert.False(t, RiskMedium.Includes(RiskHigh))
	assert.False(t, RiskHigh.Includes(RiskTier("bogus")))
}

func TestRiskTier_UnmarshalText(t *testing.T) {
	var tier RiskTier
	require.NoError(t, tier.UnmarshalText([]byte("Medium")))
	assert.Equal(t, RiskMedium, tier)
	assert.Error(t, tier.UnmarshalText([]byte("")))
}

func TestRiskTier_Title(t *testing.T) {
	assert.Equal(t, "Low", RiskLow.Title())
	assert.Equal(t, "", RiskTier("").Title())
}

func TestNewSession(t *testing.T) {
	s := NewSession()
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.HasRisk())
	s.Risk = RiskHigh
	assert.True(t, s.HasRisk())
}
