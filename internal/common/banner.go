package common

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the genie banner on w and logs the session start.
func PrintBanner(w io.Writer, config *Config, logger *Logger) {
	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 41
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "%s\n", hr)
	fmt.Fprintf(w, "%s           🧞 DeFi Genie 🧞%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(w, "%s      Your Magical DeFi Companion%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(w, "%s\n", hr)
	fmt.Fprintf(w, "\n")

	logger.Info().
		Str("version", GetVersion()).
		Str("environment", config.Environment).
		Str("catalog", catalogLabel(config.Catalog.Path)).
		Msg("Genie summoned")
}

// PrintShutdownBanner closes the session with a rule on w and logs how
// long the session lasted.
func PrintShutdownBanner(w io.Writer, logger *Logger, startedAt time.Time) {
	lineColor := banner.ColorCyan
	hr := lineColor + strings.Repeat("═", 50) + banner.ColorReset

	fmt.Fprintf(w, "\n%s\n", hr)

	logger.Info().
		Dur("session_duration", time.Since(startedAt)).
		Msg("Genie returned to the lamp")
}

func catalogLabel(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
