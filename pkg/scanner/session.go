package scanner

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/filesystem"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/assetlint/pkg/paths"
	"github.com/arthur-debert/assetlint/pkg/rules"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session runs naming scans over a directory tree, one at a time
type Session struct {
	fs      filesystem.FS
	logger  zerolog.Logger
	exclude map[string]struct{}
	hook    func(string)

	mu         sync.RWMutex
	state      State
	id         string
	root       string
	progress   Progress
	mismatches []Mismatch
	skipped    []SkippedFile
	started    time.Time
	finished   time.Time
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewSession creates an idle session
func NewSession(opts ...Option) *Session {
	s := &Session{
		fs:      filesystem.NewOS(),
		logger:  logging.GetLogger("scanner"),
		exclude: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates root and rs and launches a scan on a worker goroutine.
// Configuration and input errors are returned before any work starts.
// Cancelling ctx cancels the scan.
func (s *Session) Start(ctx context.Context, root string, rs *rules.RuleSet) error {
	if s.State() == Running {
		return errors.New(errors.ErrScanInProgress, "a scan is already running")
	}
	if rs == nil {
		return errors.New(errors.ErrConfigValid, "no rule set given")
	}

	root, err := paths.ResolveRoot(root)
	if err != nil {
		return err
	}
	info, err := s.fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrNotFound, "target directory does not exist: %s", root).
				WithDetail("root", root)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access target directory: %s", root).
			WithDetail("root", root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "target is not a directory: %s", root).
			WithDetail("root", root)
	}
	// A linked root is walked through its target; reported paths stay under root
	walkRoot, err := s.fs.EvalSymlinks(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve target directory: %s", root).
			WithDetail("root", root)
	}

	s.mu.Lock()
	if s.state == Running {
		s.mu.Unlock()
		return errors.New(errors.ErrScanInProgress, "a scan is already running")
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.reset()
	s.state = Running
	s.id = uuid.NewString()
	s.root = root
	s.started = time.Now()
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done
	id := s.id
	s.mu.Unlock()

	logger := logging.ScanLogger(s.logger, id, root)
	if walkRoot != root {
		logger.Debug().Str("target", walkRoot).Msg("Following linked root")
	}
	logger.Info().Int("rules", rs.Len()).Msg("Scan started")

	go s.run(runCtx, logger, scanRoots{root: root, walk: walkRoot}, rs, done)
	return nil
}

// Cancel requests the running scan to stop. It is a no-op when no scan is
// running.
func (s *Session) Cancel() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == Running && s.cancel != nil {
		s.cancel()
	}
}

// Wait blocks until the current scan reaches a terminal state or ctx is done.
// It returns immediately for an idle session.
func (s *Session) Wait(ctx context.Context) (State, error) {
	select {
	case <-s.Done():
		return s.State(), nil
	case <-ctx.Done():
		return s.State(), ctx.Err()
	}
}

// Done returns a channel closed when the current scan finishes. For a session
// with no scan the channel is already closed.
func (s *Session) Done() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return s.done
}

// Clear drops the results of a finished scan and returns the session to Idle
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Running {
		return errors.New(errors.ErrScanInProgress, "cannot clear a running scan")
	}
	s.reset()
	s.state = Idle
	s.id = ""
	s.root = ""
	s.started = time.Time{}
	s.done = nil
	return nil
}

// reset must be called with mu held
func (s *Session) reset() {
	s.progress = Progress{}
	s.mismatches = nil
	s.skipped = nil
	s.finished = time.Time{}
}

// State returns the lifecycle state
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Progress returns a snapshot of the counters
func (s *Session) Progress() Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress
}

// MismatchCount returns the number of mismatches found so far
func (s *Session) MismatchCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mismatches)
}

// Mismatch returns the i-th mismatch in discovery order
func (s *Session) Mismatch(i int) (Mismatch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.mismatches) {
		return Mismatch{}, false
	}
	return s.mismatches[i], true
}

// Mismatches returns a copy of all mismatches found so far
func (s *Session) Mismatches() []Mismatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Mismatch, len(s.mismatches))
	copy(out, s.mismatches)
	return out
}

// Paths returns the mismatched file paths in discovery order
func (s *Session) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.mismatches))
	for i, m := range s.mismatches {
		out[i] = m.Path
	}
	return out
}

// Skipped returns a copy of the entries that could not be read
func (s *Session) Skipped() []SkippedFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SkippedFile, len(s.skipped))
	copy(out, s.skipped)
	return out
}

// ID returns the identifier of the current scan, empty when idle
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Root returns the root of the current scan as passed to Start, cleaned. A
// linked root is not replaced by its target.
func (s *Session) Root() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// Elapsed returns how long the current scan has been running, or how long it
// ran once finished
func (s *Session) Elapsed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.started.IsZero():
		return 0
	case s.finished.IsZero():
		return time.Since(s.started)
	default:
		return s.finished.Sub(s.started)
	}
}
