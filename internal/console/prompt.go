// Package console implements the line-oriented prompts and paced output
// used by the interactive genie.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInterrupted is returned when input ends (EOF) while waiting for a line.
	ErrInterrupted = errors.New("input closed")
	// ErrInvalidNumber is returned when a line does not parse as a number.
	ErrInvalidNumber = errors.New("not a valid number")
)

// Prompter writes prompts to out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next input line, trimmed.
// A final unterminated line is returned normally; EOF with no input
// yields ErrInterrupted.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ReadFloat prompts for a decimal number. Thousands separators and a
// leading currency symbol are tolerated ("$1,250.50").
func (p *Prompter) ReadFloat(prompt string) (float64, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	d, err := ParseDecimal(line)
	if err != nil {
		return 0, err
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q: %w", line, ErrInvalidNumber)
	}
	return f, nil
}

// ReadInt prompts for a whole number.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	return ParseInt(line)
}

// ParseDecimal parses a user-typed amount.
func ParseDecimal(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "_", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	return d, nil
}

// ParseInt parses a user-typed whole number such as a day count.
func ParseInt(s string) (int, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() || d.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	return int(d.IntPart()), nil
}
