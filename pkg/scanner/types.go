package scanner

import "fmt"

// State is the lifecycle state of a Session
type State int

const (
	// Idle means no scan has run, or results were cleared
	Idle State = iota
	// Running means a worker is enumerating or processing files
	Running
	// Completed means every enumerated file was processed
	Completed
	// Cancelled means the worker stopped early on request
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether s is Completed or Cancelled
func (s State) Terminal() bool {
	return s == Completed || s == Cancelled
}

// Progress is a snapshot of scan counters. Total grows while the tree is
// being enumerated and is final once TotalKnown is set.
type Progress struct {
	Total      int
	Processed  int
	TotalKnown bool
}

// Percent returns processed/total in the range [0, 100]. An empty finished
// scan reports 100.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		if p.TotalKnown {
			return 100
		}
		return 0
	}
	return float64(p.Processed) * 100 / float64(p.Total)
}

// Mismatch is a file whose name violates a rule
type Mismatch struct {
	// Path is the scan root joined with RelPath
	Path     string `json:"path"`
	RelPath  string `json:"rel_path"`
	Category string `json:"category"`
}

// SkippedFile is a file or directory that could not be read during a scan, or
// a file no verdict could be reached for
type SkippedFile struct {
	Path string
	Err  error
}
