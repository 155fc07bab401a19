package scanner

import (
	"github.com/arthur-debert/assetlint/pkg/filesystem"
	"github.com/rs/zerolog"
)

// Option configures a Session
type Option func(*Session)

// WithFS sets the filesystem the session walks. Defaults to the OS filesystem.
func WithFS(fs filesystem.FS) Option {
	return func(s *Session) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithExcludeDirs prunes directories with any of the given base names. The
// scan root itself is never pruned.
func WithExcludeDirs(names []string) Option {
	return func(s *Session) {
		for _, name := range names {
			if name != "" {
				s.exclude[name] = struct{}{}
			}
		}
	}
}

// WithProcessHook registers fn to be called with each file path right before
// the file is processed. It runs on the worker goroutine.
func WithProcessHook(fn func(path string)) Option {
	return func(s *Session) {
		s.hook = fn
	}
}
