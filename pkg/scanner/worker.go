package scanner

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/assetlint/pkg/rules"
	"github.com/rs/zerolog"
)

var errWalkCancelled = stderrors.New("walk cancelled")

// scanRoots pairs the root as given with the directory actually walked,
// which differs when root is a symbolic link.
type scanRoots struct {
	root string
	walk string
}

// report maps a walked path to the same path under the given root
func (r scanRoots) report(path string) (abs, rel string) {
	rel, err := filepath.Rel(r.walk, path)
	if err != nil {
		return path, path
	}
	return filepath.Join(r.root, rel), rel
}

func (s *Session) run(ctx context.Context, logger zerolog.Logger, roots scanRoots, rs *rules.RuleSet, done chan struct{}) {
	defer close(done)

	endEnumerate := logging.StartPhase(logger, "enumerate")
	files, cancelled := s.enumerate(ctx, logger, roots)
	endEnumerate(len(files))

	if !cancelled {
		endProcess := logging.StartPhase(logger, "process")
		var processed int
		processed, cancelled = s.process(ctx, logger, roots, rs, files)
		endProcess(processed)
	}
	s.finish(logger, cancelled)
}

// enumerate walks the root and returns every non-directory entry in lexical order
func (s *Session) enumerate(ctx context.Context, logger zerolog.Logger, roots scanRoots) ([]string, bool) {
	var files []string

	err := s.fs.Walk(roots.walk, func(path string, info os.FileInfo, err error) error {
		if ctx.Err() != nil {
			return errWalkCancelled
		}
		if err != nil {
			shown, _ := roots.report(path)
			s.recordSkipped(logger, shown, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", shown))
			return nil
		}
		if info.IsDir() {
			if path != roots.walk && s.excluded(info.Name()) {
				logger.Debug().Str("dir", path).Msg("Pruning excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		files = append(files, path)
		s.mu.Lock()
		s.progress.Total++
		s.mu.Unlock()
		return nil
	})
	if stderrors.Is(err, errWalkCancelled) {
		return files, true
	}
	if err != nil {
		s.recordSkipped(logger, roots.root, errors.Wrapf(err, errors.ErrFileAccess, "walk of %s failed", roots.root))
	}

	s.mu.Lock()
	s.progress.Total = len(files)
	s.progress.TotalKnown = true
	s.mu.Unlock()

	return files, false
}

// process evaluates files in order. It returns how many files it handled and
// whether it stopped on cancellation.
func (s *Session) process(ctx context.Context, logger zerolog.Logger, roots scanRoots, rs *rules.RuleSet, files []string) (int, bool) {
	for i, path := range files {
		if ctx.Err() != nil {
			return i, true
		}
		if s.hook != nil {
			s.hook(path)
			if ctx.Err() != nil {
				return i, true
			}
		}

		abs, rel := roots.report(path)

		var mismatch *Mismatch
		var skipped *SkippedFile
		if _, err := s.fs.Lstat(path); err != nil {
			skipped = &SkippedFile{
				Path: abs,
				Err:  errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", abs),
			}
		} else if rule, bad, err := rs.VerdictPath(path); err != nil {
			skipped = &SkippedFile{Path: abs, Err: err}
		} else if bad {
			mismatch = &Mismatch{
				Path:     abs,
				RelPath:  rel,
				Category: rule.Category,
			}
		}

		s.mu.Lock()
		if mismatch != nil {
			s.mismatches = append(s.mismatches, *mismatch)
		}
		if skipped != nil {
			s.skipped = append(s.skipped, *skipped)
		}
		s.progress.Processed++
		s.mu.Unlock()

		if mismatch != nil {
			logger.Debug().Str("path", rel).Str("category", mismatch.Category).Msg("Naming mismatch")
		}
		if skipped != nil {
			logger.Warn().Err(skipped.Err).Str("path", abs).Msg("Skipping file without a verdict")
		}
	}
	return len(files), false
}

func (s *Session) finish(logger zerolog.Logger, cancelled bool) {
	s.mu.Lock()
	if cancelled {
		s.state = Cancelled
	} else {
		s.state = Completed
	}
	s.finished = time.Now()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	state := s.state
	progress := s.progress
	count := len(s.mismatches)
	elapsed := s.finished.Sub(s.started)
	s.mu.Unlock()

	logger.Info().
		Str("state", state.String()).
		Int("total", progress.Total).
		Int("processed", progress.Processed).
		Int("mismatches", count).
		Dur("elapsed", elapsed).
		Msg("Scan finished")
}

func (s *Session) recordSkipped(logger zerolog.Logger, path string, err error) {
	s.mu.Lock()
	s.skipped = append(s.skipped, SkippedFile{Path: path, Err: err})
	s.mu.Unlock()
	logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
}

func (s *Session) excluded(name string) bool {
	_, ok := s.exclude[name]
	return ok
}
