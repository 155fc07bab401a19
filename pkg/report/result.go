// Package report renders scan results and rule sets for people and tools.
//
// A Result is a frozen snapshot of a scanner.Session. It can be written as a
// paginated text report, as JSON, or as checkstyle XML for CI annotators.
package report

import (
	"time"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/scanner"
)

// Result is a snapshot of a scan
type Result struct {
	ID         string
	Root       string
	State      scanner.State
	Total      int
	Processed  int
	Elapsed    time.Duration
	Mismatches []scanner.Mismatch
	Skipped    []scanner.SkippedFile
}

// FromSession snapshots the current state of s
func FromSession(s *scanner.Session) Result {
	progress := s.Progress()
	return Result{
		ID:         s.ID(),
		Root:       s.Root(),
		State:      s.State(),
		Total:      progress.Total,
		Processed:  progress.Processed,
		Elapsed:    s.Elapsed(),
		Mismatches: s.Mismatches(),
		Skipped:    s.Skipped(),
	}
}

// Format is an output format for Result
type Format string

const (
	FormatText       Format = "text"
	FormatJSON       Format = "json"
	FormatCheckstyle Format = "checkstyle"
)

// Formats lists the supported formats
var Formats = []Format{FormatText, FormatJSON, FormatCheckstyle}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s).
		WithDetail("format", s)
}

// Pagination selects the slice of mismatches shown in the text report
type Pagination struct {
	// Page is 1-based
	Page int
	Size int
	// All disables pagination
	All bool
}

// PageCount returns the number of pages needed for count mismatches
func (p Pagination) PageCount(count int) int {
	if p.All || p.Size <= 0 {
		if count == 0 {
			return 0
		}
		return 1
	}
	return (count + p.Size - 1) / p.Size
}

// bounds returns the mismatch index range of the selected page
func (p Pagination) bounds(count int) (int, int, error) {
	if p.All || p.Size <= 0 {
		return 0, count, nil
	}
	pages := p.PageCount(count)
	page := p.Page
	if page <= 0 {
		page = 1
	}
	if pages == 0 && page == 1 {
		return 0, 0, nil
	}
	if page > pages {
		return 0, 0, errors.Newf(errors.ErrInvalidInput, "page %d out of range (1-%d)", page, pages).
			WithDetail("page", page)
	}
	start := (page - 1) * p.Size
	end := start + p.Size
	if end > count {
		end = count
	}
	return start, end, nil
}
