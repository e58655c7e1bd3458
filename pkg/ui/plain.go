package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/karthickk/welcome/pkg/config"
	"github.com/karthickk/welcome/pkg/sequencer"
	"github.com/pterm/pterm"
	"k8s.io/utils/clock"
)

// RunPlain plays the reveal sequence as plain lines on w. It is used when
// stdout is not a terminal or --plain is set. It returns when the
// sequence completes or ctx is cancelled.
func RunPlain(ctx context.Context, w io.Writer, cfg *config.Config, clk clock.WithDelayedExecution, logger *pterm.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}

	if err := DisplayHeader(w, cfg.Site); err != nil {
		return err
	}

	done := make(chan struct{})
	seq := sequencer.New(clk, cfg.Timing(), sequencer.WithLogger(logger))
	stop := seq.Start(func() { close(done) })
	defer stop()

	dim := color.New(color.FgHiBlack)
	magenta := color.New(color.FgMagenta, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	dim.Fprintf(w, "loading (%s)...\n", cfg.Timing().LoadingDuration)

	events := seq.Events()
	for events != nil {
		select {
		case <-ctx.Done():
			logger.Info("welcome interrupted")
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			switch ev {
			case sequencer.EventSecondaryEffect:
				magenta.Fprintln(w, "✦ ✧ ✦")
			case sequencer.EventLoadingDone:
				fmt.Fprintf(w, "◍ %s ⚡\n", cfg.Site.URL)
			case sequencer.EventComplete:
				green.Fprintf(w, "✅ Welcome to %s's %s\n", cfg.Site.Owner, cfg.Site.Title)
			}
		}
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.Info("welcome interrupted")
		return nil
	}
}
