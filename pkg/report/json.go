package report

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/assetlint/pkg/scanner"
)

type jsonSkipped struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type jsonResult struct {
	ID            string             `json:"id"`
	Root          string             `json:"root"`
	State         string             `json:"state"`
	Total         int                `json:"total"`
	Processed     int                `json:"processed"`
	ElapsedMS     int64              `json:"elapsed_ms"`
	MismatchCount int                `json:"mismatch_count"`
	Mismatches    []scanner.Mismatch `json:"mismatches"`
	Skipped       []jsonSkipped      `json:"skipped"`
}

// WriteJSON writes the full result as indented JSON. Pagination does not apply.
func WriteJSON(w io.Writer, r Result) error {
	out := jsonResult{
		ID:            r.ID,
		Root:          r.Root,
		State:         r.State.String(),
		Total:         r.Total,
		Processed:     r.Processed,
		ElapsedMS:     r.Elapsed.Milliseconds(),
		MismatchCount: len(r.Mismatches),
		Mismatches:    r.Mismatches,
		Skipped:       make([]jsonSkipped, 0, len(r.Skipped)),
	}
	if out.Mismatches == nil {
		out.Mismatches = []scanner.Mismatch{}
	}
	for _, s := range r.Skipped {
		out.Skipped = append(out.Skipped, jsonSkipped{Path: s.Path, Error: errorText(s.Err)})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
