// Package prompt turns free-text descriptions into config changes by
// keyword lookup.
package prompt

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/patternmaker/patternmaker/internal/pattern"
)

// ErrEmptyPrompt is returned for blank input. Callers treat it as a no-op.
var ErrEmptyPrompt = errors.New("empty prompt")

// Interpreter wraps Parse with an optional artificial delay.
type Interpreter struct {
	delay time.Duration
}

// NewInterpreter creates an interpreter that waits delay before answering.
// A zero delay answers immediately.
func NewInterpreter(delay time.Duration) *Interpreter {
	return &Interpreter{delay: delay}
}

// Interpret returns the delta for text. The wait is abandoned if ctx ends
// first.
func (i *Interpreter) Interpret(ctx context.Context, text string) (pattern.Delta, error) {
	if strings.TrimSpace(text) == "" {
		return pattern.Delta{}, ErrEmptyPrompt
	}

	if i.delay > 0 {
		timer := time.NewTimer(i.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return pattern.Delta{}, ctx.Err()
		case <-timer.C:
		}
	}

	d := Parse(text)
	slog.Debug("prompt interpreted", "prompt", text, "empty", d.IsEmpty())
	return d, nil
}
