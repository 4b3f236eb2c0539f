package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bobmcallan/genie/internal/console"
	"github.com/bobmcallan/genie/internal/models"
	"github.com/bobmcallan/genie/internal/services/farming"
	"github.com/bobmcallan/genie/internal/services/insurance"
	"github.com/bobmcallan/genie/internal/services/roi"
	"github.com/bobmcallan/genie/internal/services/staking"
)

// inputFailed reports a rejected number with the screen's message and
// tells the caller whether to abort. Interrupts are passed through.
func (a *App) inputFailed(err error, message string) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, console.ErrInterrupted) {
		return true, err
	}
	if errors.Is(err, console.ErrInvalidNumber) ||
		errors.Is(err, models.ErrInvalidAmount) ||
		errors.Is(err, models.ErrInvalidDuration) {
		a.Logger.Debug().Err(err).Msg("Rejected input")
		fmt.Fprintln(a.out, message)
		return true, nil
	}
	return true, err
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (a *App) stakingScreen(ctx context.Context) error {
	const cloudy = "❌ The Crystal Ball is cloudy... Please provide valid numbers!"

	a.heading(ctx, "📊 THE STAKING CRYSTAL BALL 📊")

	pools := staking.Eligible(a.Catalog.StakingPools, a.Session.Risk)

	fmt.Fprintf(a.out, "\n🎯 As a %s risk-taker, the Crystal Ball reveals these pools for you:\n", a.Session.Risk)
	fmt.Fprintln(a.out, "\nAvailable Staking Pools:")
	for i, p := range pools {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, p.Name)
		fmt.Fprintf(a.out, "     APY: %s | Risk: %s %s\n", a.money.Rate(p.APY), p.Risk.Emoji(), p.Risk.Title())
		fmt.Fprintf(a.out, "     Minimum to Stake: %s tokens\n", formatAmount(p.MinStake))
	}

	amount, err := a.prompt.ReadFloat("\n💰 How many coins do you wish to stake?: ")
	if stop, err := a.inputFailed(err, cloudy); stop {
		return err
	}
	days, err := a.prompt.ReadInt("⏰ For how many suns and moons (in days)?: ")
	if stop, err := a.inputFailed(err, cloudy); stop {
		return err
	}

	result, err := staking.Project(pools, amount, days)
	if stop, err := a.inputFailed(err, cloudy); stop {
		return err
	}

	fmt.Fprintf(a.out, "\n🧮 GAZING INTO THE FUTURE... YOUR %d-DAY STAKING PROJECTIONS:\n", days)
	fmt.Fprintln(a.out, strings.Repeat("─", 50))

	for _, p := range result.Projections {
		fmt.Fprintf(a.out, "\n%s:\n", p.Pool.Name)
		fmt.Fprintf(a.out, "  💵 Your Stake: %s\n", a.money.Money(p.Principal))
		fmt.Fprintf(a.out, "  📈 Your Projected Reward: %s\n", a.money.Money(p.Reward))
		fmt.Fprintf(a.out, "  💎 Your Final Treasure: %s\n", a.money.Money(p.Final))
		fmt.Fprintf(a.out, "  📊 Annual Percentage Yield: %s\n", a.money.Rate(p.Pool.APY))
	}
	for _, p := range result.BelowMinimum {
		fmt.Fprintf(a.out, "\n⚠️  %s needs at least %s tokens to stake.\n", p.Name, formatAmount(p.MinStake))
	}

	a.Logger.Debug().
		Float64("principal", amount).
		Int("days", days).
		Int("projections", len(result.Projections)).
		Msg("Staking projection")
	return nil
}

func (a *App) roiScreen(ctx context.Context) error {
	a.heading(ctx, "💹 CHARTING THE STARS OF ROI 💹")

	initial, err := a.prompt.ReadFloat("\n💰 What is the initial treasure you wish to invest ($)?: ")
	if stop, err := a.inputFailed(err, "❌ The stars are not aligned... Please provide a valid investment amount!"); stop {
		return err
	}

	results, err := roi.Simulate(a.Catalog.ROIScenarios, initial)
	if stop, err := a.inputFailed(err, "❌ The stars are not aligned... Please provide a valid investment amount!"); stop {
		return err
	}

	fmt.Fprintf(a.out, "\n📊 The stars predict the following fortunes for your %s:\n", a.money.Money(initial))
	fmt.Fprintln(a.out, strings.Repeat(rule, 60))

	for _, r := range results {
		fmt.Fprintf(a.out, "\n%s STRATEGY:\n", strings.ToUpper(r.Scenario.Name))
		fmt.Fprintln(a.out, strings.Repeat("─", 30))
		for _, p := range r.Points {
			fmt.Fprintf(a.out, "  After %2d month(s): %10s (ROI: %7s)\n",
				p.Months, a.money.Money(p.Final), a.money.SignedPct(p.ROIPct))
		}
	}
	return nil
}

func (a *App) farmingScreen(ctx context.Context) error {
	const skipping = "Skipping the harvest forecast..."

	a.heading(ctx, "🌾 UNEARTHING YIELD FARMING SECRETS 🌾")

	farms := farming.Suitable(a.Catalog.YieldFarms, a.Session.Risk)

	fmt.Fprintf(a.out, "\n🎯 The most bountiful harvests for a %s adventurer:\n", a.Session.Risk.Title())
	fmt.Fprintln(a.out, strings.Repeat(rule, 70))

	for i, f := range farms {
		fmt.Fprintf(a.out, "\n%d. %s\n", i+1, f.Name)
		fmt.Fprintf(a.out, "   📈 Annual Percentage Yield: %s\n", a.money.Rate(f.APY))
		fmt.Fprintf(a.out, "   🎯 Risk Level: %s %s\n", f.Risk.Emoji(), f.Risk.Title())
		fmt.Fprintf(a.out, "   💰 Total Value Locked (TVL): %s%s\n", a.money.Symbol(), f.TVL)
		fmt.Fprintf(a.out, "   💡 Genie's Whisper: %s\n", farming.Whisper(f.Risk))
	}
	if len(farms) == 0 {
		fmt.Fprintln(a.out, "\nNo farms match your spirit for adventure today.")
		return nil
	}

	choice, err := a.prompt.ReadLine(fmt.Sprintf("\nWould you like to foresee the returns for any of these farms? (1-%d or 0 to skip): ", len(farms)))
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(farms) {
		if choice != "" && choice != "0" {
			fmt.Fprintln(a.out, skipping)
		}
		return nil
	}
	farm := farms[n-1]

	amount, err := a.prompt.ReadFloat(fmt.Sprintf("\n💰 How much will you invest in the %s farm?: $", farm.Name))
	if stop, err := a.inputFailed(err, skipping); stop {
		return err
	}
	forecasts, err := farming.Project(farm, amount)
	if stop, err := a.inputFailed(err, skipping); stop {
		return err
	}

	fmt.Fprintln(a.out, "\n🧮 FORESEEING YOUR HARVEST:")
	fmt.Fprintln(a.out, strings.Repeat("─", 40))
	for _, f := range forecasts {
		unit := "day"
		if f.Days > 1 {
			unit = "days"
		}
		fmt.Fprintf(a.out, "  %8s: %10s profit (Total: %10s)\n",
			fmt.Sprintf("%d %s", f.Days, unit), a.money.Money(f.Profit), a.money.Money(f.Total))
	}
	return nil
}

func (a *App) insuranceScreen(ctx context.Context) error {
	const failing = "❌ The magic is failing... Please provide a valid portfolio value!"

	a.heading(ctx, "🛡️ WEAVING A SHIELD OF INSURANCE 🛡️")

	fmt.Fprintln(a.out, "\nProtect your hard-won treasure with a shield of insurance!")
	fmt.Fprintln(a.out, "\nAvailable Magical Shields:")
	for i, p := range a.Catalog.InsurancePools {
		fmt.Fprintf(a.out, "\n%d. %s\n", i+1, p.Name)
		fmt.Fprintf(a.out, "   🛡️  Coverage Strength: %s\n", a.money.Rate(p.CoverageRatio*100))
		fmt.Fprintf(a.out, "   💳 Annual Tribute: %s\n", a.money.Rate(p.PremiumPct))
		fmt.Fprintf(a.out, "   🎯 Risk Rating: %s %s\n", p.Risk.Emoji(), p.Risk.Title())
	}

	value, err := a.prompt.ReadFloat("\n💰 What is the value of the treasure you wish to shield ($)?: ")
	if stop, err := a.inputFailed(err, failing); stop {
		return err
	}
	quotes, err := insurance.Simulate(a.Catalog.InsurancePools, value)
	if stop, err := a.inputFailed(err, failing); stop {
		return err
	}

	fmt.Fprintf(a.out, "\n📊 ANALYZING THE SHIELD'S STRENGTH FOR %s:\n", a.money.Money(value))
	fmt.Fprintln(a.out, strings.Repeat(rule, 60))

	for _, q := range quotes {
		fmt.Fprintf(a.out, "\n%s:\n", strings.ToUpper(q.Pool.Name))
		fmt.Fprintf(a.out, "  💳 Annual Tribute: %s\n", a.money.Money(q.AnnualPremium))
		fmt.Fprintf(a.out, "  🛡️  Shielded Amount: %s\n", a.money.Money(q.Covered))
		fmt.Fprintf(a.out, "  ⚠️  Unshielded Amount: %s\n", a.money.Money(q.Uncovered))
		fmt.Fprintf(a.out, "  📊 Monthly Cost: %s\n", a.money.Money(q.MonthlyCost))
		fmt.Fprintf(a.out, "  💡 Genie's Assessment: %s\n", insurance.Assessment(q.Pool.Risk))
	}
	return nil
}
