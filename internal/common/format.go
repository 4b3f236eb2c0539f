package common

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders money and percentages for the console.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter creates a formatter using symbol as the currency prefix.
func NewFormatter(symbol string) *Formatter {
	if symbol == "" {
		symbol = "$"
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.English),
	}
}

// Money formats v with thousands separators and two decimals: "$1,234.56".
func (f *Formatter) Money(v float64) string {
	if v < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%.2f", math.Abs(v))
	}
	return f.symbol + f.printer.Sprintf("%.2f", v)
}

// SignedPct formats a percentage with sign and one decimal: "+26.8%".
func (f *Formatter) SignedPct(v float64) string {
	sign := "+"
	if v < 0 {
		sign = "-"
	}
	return sign + f.printer.Sprintf("%.1f", math.Abs(v)) + "%"
}

// Symbol returns the currency prefix.
func (f *Formatter) Symbol() string {
	return f.symbol
}

// Rate formats a catalog rate as written, keeping at least one decimal: "4.5%", "2.0%".
func (f *Formatter) Rate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}
