package check

import (
	"context"

	"github.com/arthur-debert/assetlint/pkg/config"
	"github.com/arthur-debert/assetlint/pkg/filesystem"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/assetlint/pkg/paths"
	"github.com/arthur-debert/assetlint/pkg/report"
	"github.com/arthur-debert/assetlint/pkg/scanner"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc observes a running session until it finishes or ctx is done
type ProgressFunc func(ctx context.Context, s *scanner.Session) error

// CheckOptions holds options for the check command
type CheckOptions struct {
	Root       string
	ConfigFile string
	// ExcludeDirs adds to the configured exclude_dirs
	ExcludeDirs []string
	// FileSystem defaults to the OS filesystem
	FileSystem filesystem.FS
	// Progress runs alongside the scan, e.g. to draw a progress bar
	Progress ProgressFunc
	// SkipUserConfig ignores the user config layer
	SkipUserConfig bool
}

// CheckResult is the outcome of a check
type CheckResult struct {
	Config *config.Config
	Result report.Result
}

// Cancelled reports whether the scan stopped early
func (r *CheckResult) Cancelled() bool {
	return r.Result.State == scanner.Cancelled
}

// HasMismatches reports whether any file was flagged
func (r *CheckResult) HasMismatches() bool {
	return len(r.Result.Mismatches) > 0
}

// Check loads configuration for the root, scans it and waits for the result.
// Cancelling ctx cancels the scan; the partial result is still returned.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	logger := logging.GetLogger("commands.check")

	root, err := paths.ResolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	endConfigure := logging.StartPhase(logger, "configure")
	cfg, err := config.Load(config.LoadOptions{
		Root:           root,
		ConfigFile:     opts.ConfigFile,
		SkipUserConfig: opts.SkipUserConfig,
	})
	if err != nil {
		return nil, err
	}
	rs, err := cfg.RuleSet()
	if err != nil {
		return nil, err
	}
	endConfigure(rs.Len())

	sessionOpts := []scanner.Option{
		scanner.WithExcludeDirs(cfg.ExcludeDirs),
		scanner.WithExcludeDirs(opts.ExcludeDirs),
	}
	if opts.FileSystem != nil {
		sessionOpts = append(sessionOpts, scanner.WithFS(opts.FileSystem))
	}
	session := scanner.NewSession(sessionOpts...)

	if err := session.Start(ctx, root, rs); err != nil {
		return nil, err
	}
	logger.Info().Str("root", root).Str("scan", session.ID()).Msg("Checking naming conventions")

	// The scan itself observes ctx; waiting uses a detached context so the
	// terminal state is always reached before results are read.
	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		_, err := session.Wait(gctx)
		return err
	})
	if opts.Progress != nil {
		g.Go(func() error {
			return opts.Progress(gctx, session)
		})
	}
	if err := g.Wait(); err != nil {
		session.Cancel()
		<-session.Done()
		return nil, err
	}

	result := report.FromSession(session)
	logger.Info().
		Str("state", result.State.String()).
		Int("mismatches", len(result.Mismatches)).
		Int("skipped", len(result.Skipped)).
		Msg("Check finished")

	return &CheckResult{Config: cfg, Result: result}, nil
}
