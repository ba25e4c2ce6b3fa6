// Package alarm delivers interval-completion alerts to the terminal.
package alarm

import (
	"fmt"
	"io"
	"log/slog"
)

// Notifier plays a named alarm sound when an interval completes.
type Notifier interface {
	Play(sound string) error
}

// Bell rings the terminal bell. The sound name travels with the request
// so richer notifiers can honor it; a plain terminal picks its own tone.
type Bell struct {
	out    io.Writer
	logger *slog.Logger
}

// NewBell creates a bell notifier writing to out.
func NewBell(out io.Writer, logger *slog.Logger) *Bell {
	return &Bell{out: out, logger: logger}
}

// Play rings the bell.
func (b *Bell) Play(sound string) error {
	if _, err := io.WriteString(b.out, "\a"); err != nil {
		return fmt.Errorf("ring terminal bell: %w", err)
	}
	b.logger.Debug("alarm played", "sound", sound)
	return nil
}

// Silent discards every alarm. Used in tests and on terminals where
// the bell is disruptive.
type Silent struct{}

// Play does nothing.
func (Silent) Play(string) error { return nil }
