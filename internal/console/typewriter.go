package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"
)

// Typewriter prints text one character at a time at a fixed pace.
// A zero delay prints lines whole.
type Typewriter struct {
	out     io.Writer
	limiter *rate.Limiter
}

// NewTypewriter creates a typewriter writing to out with delay between characters.
func NewTypewriter(out io.Writer, delay time.Duration) *Typewriter {
	tw := &Typewriter{out: out}
	if delay > 0 {
		tw.limiter = rate.NewLimiter(rate.Every(delay), 1)
	}
	return tw
}

// Println types text followed by a newline. If ctx is cancelled the
// rest of the line is written immediately.
func (t *Typewriter) Println(ctx context.Context, text string) {
	if t.limiter == nil {
		fmt.Fprintln(t.out, text)
		return
	}
	runes := []rune(text)
	for i, r := range runes {
		if err := t.limiter.Wait(ctx); err != nil {
			fmt.Fprint(t.out, string(runes[i:]))
			break
		}
		fmt.Fprint(t.out, string(r))
	}
	fmt.Fprintln(t.out)
}

// Pause waits for d when pacing is enabled.
func (t *Typewriter) Pause(ctx context.Context, d time.Duration) {
	if t.limiter == nil || d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
