// Package roi tabulates compounded returns for the strategy profiles.
package roi

import (
	"fmt"
	"math"

	"github.com/bobmcallan/genie/internal/models"
)

// Horizons are the month counts reported for every scenario.
var Horizons = []int{1, 3, 6, 12}

// Point is the value of the investment after Months months.
type Point struct {
	Months int
	Final  float64
	ROIPct float64
}

// ScenarioResult holds every horizon for one strategy profile.
type ScenarioResult struct {
	Scenario models.ROIScenario
	Points   []Point
}

// Compound grows initial by monthlyPct percent per month for months
// months, one multiplication per month.
func Compound(initial, monthlyPct float64, months int) float64 {
	growth := monthlyPct / 100
	amount := initial
	for i := 0; i < months; i++ {
		amount *= 1 + growth
	}
	return amount
}

// ROIPct returns (final-initial)/initial as a percentage.
func ROIPct(initial, final float64) float64 {
	return (final - initial) / initial * 100
}

// Simulate runs every scenario over Horizons. Each horizon starts again
// from initial.
func Simulate(scenarios []models.ROIScenario, initial float64) ([]ScenarioResult, error) {
	if math.IsNaN(initial) || math.IsInf(initial, 0) || initial <= 0 {
		return nil, fmt.Errorf("initial investment %v: %w", initial, models.ErrInvalidAmount)
	}

	results := make([]ScenarioResult, 0, len(scenarios))
	for _, s := range scenarios {
		sr := ScenarioResult{Scenario: s, Points: make([]Point, 0, len(Horizons))}
		for _, months := range Horizons {
			final := Compound(initial, s.MonthlyReturnPct, months)
			sr.Points = append(sr.Points, Point{
				Months: months,
				Final:  final,
				ROIPct: ROIPct(initial, final),
			})
		}
		results = append(results, sr)
	}
	return results, nil
}
