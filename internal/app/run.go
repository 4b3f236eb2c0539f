package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"github.com/bobmcallan/genie/internal/common"
	"github.com/bobmcallan/genie/internal/console"
	"github.com/bobmcallan/genie/internal/models"
)

const rule = "═"

type persona struct {
	tier  models.RiskTier
	title string
	label string
}

var personas = []persona{
	{models.RiskLow, "Cautious Explorer", "A Cautious Explorer 🛡️  (I prefer safe, steady voyages)"},
	{models.RiskMedium, "Bold Adventurer", "A Bold Adventurer 🎯   (I embrace calculated risks for greater rewards)"},
	{models.RiskHigh, "Daring Treasure Hunter", "A Daring Treasure Hunter 🚀 (I seek the highest fortunes, whatever the peril!)"},
}

type menuItem struct {
	key    string
	label  string
	action func(context.Context) error
}

func (a *App) menu() []menuItem {
	return []menuItem{
		{"1", "📊 Gaze into the Staking Crystal Ball", a.stakingScreen},
		{"2", "💹 Chart the Stars of ROI", a.roiScreen},
		{"3", "🌾 Unearth Yield Farming Secrets", a.farmingScreen},
		{"4", "🛡️  Weave a Shield of Insurance", a.insuranceScreen},
		{"5", "🚪 Return to the Mortal World", nil},
	}
}

// Run drives the session: banner, introduction, risk selection and the
// menu loop. It returns nil when the user leaves or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "🚀 Summoning the DeFi Genie...")
	a.tw.Pause(ctx, a.Config.Console.GetIntroPause())

	common.PrintBanner(a.out, a.Config, a.Logger)
	a.introduce(ctx)

	if !a.Session.HasRisk() {
		if err := a.chooseRisk(ctx); err != nil {
			if errors.Is(err, console.ErrInterrupted) {
				a.Interrupted()
				return nil
			}
			return err
		}
	}

	for {
		choice, err := a.showMenu(ctx)
		if err != nil {
			if errors.Is(err, console.ErrInterrupted) {
				a.Interrupted()
				return nil
			}
			return err
		}

		done, err := a.dispatch(ctx, choice)
		if errors.Is(err, console.ErrInterrupted) {
			a.Interrupted()
			return nil
		}
		if err != nil {
			a.Logger.Error().Err(err).Str("choice", choice).Msg("Menu action failed")
			fmt.Fprintf(a.out, "\n❌ A wild sandstorm has appeared! Something went wrong: %v\n", err)
			fmt.Fprintln(a.out, "Let's try that again...")
			continue
		}
		if done {
			common.PrintShutdownBanner(a.out, a.Logger, a.Session.StartedAt)
			return nil
		}

		if a.Config.Console.PauseAfterScreen {
			if _, err := a.prompt.ReadLine("\nPress Enter to return to the Genie's Menu of Marvels..."); err != nil {
				if errors.Is(err, console.ErrInterrupted) {
					a.Interrupted()
					return nil
				}
				return err
			}
		}
		fmt.Fprintln(a.out, "\n"+strings.Repeat("=", 50))
	}
}

// dispatch runs the action for choice. A panic inside an action is
// recovered and returned as an error so the loop keeps going.
func (a *App) dispatch(ctx context.Context, choice string) (done bool, err error) {
	var item *menuItem
	for _, m := range a.menu() {
		if m.key == choice {
			item = &m
			break
		}
	}
	if item == nil {
		a.Logger.Debug().Str("choice", choice).Msg("Invalid menu choice")
		fmt.Fprintln(a.out, "❌ An invalid choice! Please select a number from 1 to 5 from the Genie's menu.")
		return false, nil
	}
	if item.action == nil {
		a.farewell(ctx)
		return true, nil
	}

	defer func() {
		if r := recover(); r != nil {
			a.Logger.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			err = fmt.Errorf("%v", r)
		}
	}()

	a.Logger.Info().Str("choice", choice).Str("action", item.label).Msg("Menu action")
	return false, item.action(ctx)
}

func (a *App) heading(ctx context.Context, title string) {
	a.tw.Println(ctx, "\n"+title)
	a.tw.Println(ctx, strings.Repeat(rule, 40))
}

func (a *App) introduce(ctx context.Context) {
	a.tw.Println(ctx, "\n✨ *POOF!* ✨")
	a.tw.Pause(ctx, a.Config.Console.GetIntroPause()/2)
	a.tw.Println(ctx, "\nGreetings, intrepid DeFi explorer! 🌟")
	a.tw.Println(ctx, "I am the DeFi Genie, summoned to grant your wishes for financial wisdom!")
	a.tw.Println(ctx, "\n🎯 I can illuminate the path through the mystical world of Decentralized Finance,")
	a.tw.Println(ctx, "   from the treasures of staking rewards to the bountiful harvests of yield farming! 💰")
	a.tw.Println(ctx, "\nBut first, tell me, what is your spirit for adventure...?")
}

func (a *App) chooseRisk(ctx context.Context) error {
	a.heading(ctx, "🎲 YOUR SPIRIT FOR ADVENTURE 🎲")

	fmt.Fprintln(a.out, "\nHow would you describe your approach to the treasures of DeFi?")
	for i, p := range personas {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, p.label)
	}

	for {
		choice, err := a.prompt.ReadLine("\nEnter your choice (1-3): ")
		if err != nil {
			return err
		}
		idx := -1
		for i := range personas {
			if choice == fmt.Sprint(i+1) {
				idx = i
			}
		}
		if idx < 0 {
			fmt.Fprintln(a.out, "❌ Please select a valid number from the scrolls (1, 2, or 3)")
			continue
		}

		p := personas[idx]
		a.Session.Risk = p.tier
		a.Logger.Info().Str("risk", string(p.tier)).Msg("Risk appetite selected")
		a.tw.Println(ctx, fmt.Sprintf("\n✅ Understood! A %s you are. Your wish is my command!", p.title))
		return nil
	}
}

func (a *App) showMenu(ctx context.Context) (string, error) {
	a.heading(ctx, "🎪 THE GENIE'S MENU OF MARVELS 🎪")

	fmt.Fprintln(a.out, "\nWhat secrets shall we uncover together?")
	for _, m := range a.menu() {
		fmt.Fprintf(a.out, "  %s. %s\n", m.key, m.label)
	}
	return a.prompt.ReadLine("\nEnter your choice (1-5): ")
}

func (a *App) farewell(ctx context.Context) {
	a.tw.Println(ctx, "\n✨ Thank you for seeking the wisdom of the DeFi Genie! ✨")
	a.tw.Println(ctx, "🧞 May your yields be ever bountiful and your risks always calculated!")
	a.tw.Println(ctx, "💰 Remember: My whispers are for educational purposes - always Do Your Own Research!")
	a.tw.Println(ctx, "\n*With a final nod, the genie swirls back into the lamp...* 🏺")
}

// Interrupted prints the hurried goodbye used when the user presses
// Ctrl+C or input ends. It is safe to call from a signal handler while
// Run is writing.
func (a *App) Interrupted() {
	a.Logger.Info().Dur("session_duration", time.Since(a.Session.StartedAt)).Msg("Session interrupted")
	a.out.Do(func(w io.Writer) {
		fmt.Fprintln(w, "\n\n🧞 The Genie senses your urgency to depart... Farewell!")
	})
}
