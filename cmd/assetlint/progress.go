package assetlint

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/assetlint/pkg/commands"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/assetlint/pkg/scanner"
	"github.com/pterm/pterm"
)

const progressInterval = 100 * time.Millisecond

// newProgressBar draws a spinner while files are enumerated, then a bar
// while they are checked. Both are removed once the scan ends.
func newProgressBar(w io.Writer, interval time.Duration) commands.ProgressFunc {
	return func(ctx context.Context, s *scanner.Session) error {
		logger := logging.GetLogger("cli.progress")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		spinner, err := pterm.DefaultSpinner.
			WithWriter(w).
			WithRemoveWhenDone(true).
			Start(fmt.Sprintf(MsgScanningFormat, s.Root()))
		if err != nil {
			logger.Debug().Err(err).Msg("Progress spinner unavailable")
			return nil
		}
		spinning := true
		var bar *pterm.ProgressbarPrinter

		stop := func() {
			if spinning {
				_ = spinner.Stop()
			}
			if bar != nil {
				_, _ = bar.Stop()
			}
		}

		for {
			select {
			case <-s.Done():
				stop()
				return nil
			case <-ctx.Done():
				stop()
				return nil
			case <-ticker.C:
			}

			p := s.Progress()
			if !p.TotalKnown {
				spinner.UpdateText(fmt.Sprintf(MsgEnumerating, p.Total))
				continue
			}
			if p.Total == 0 {
				continue
			}
			if bar == nil {
				_ = spinner.Stop()
				spinning = false
				bar, err = pterm.DefaultProgressbar.
					WithWriter(w).
					WithTotal(p.Total).
					WithTitle(MsgProcessing).
					WithRemoveWhenDone(true).
					Start()
				if err != nil {
					logger.Debug().Err(err).Msg("Progress bar unavailable")
					return nil
				}
			}
			if delta := p.Processed - bar.Current; delta > 0 {
				bar.Add(delta)
			}
		}
	}
}
