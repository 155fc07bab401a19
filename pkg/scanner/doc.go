// Package scanner walks a directory tree and classifies every file against a
// rules.RuleSet.
//
// A Session owns at most one scan at a time. Start validates its inputs
// synchronously and then hands the work to a single worker goroutine, so the
// caller stays free to poll progress, read partial results or cancel.
//
// # Lifecycle
//
//	Idle -> Running -> Completed
//	                -> Cancelled
//
// Starting a scan from Completed or Cancelled discards the previous results.
// Starting while Running is rejected with SCAN_IN_PROGRESS.
//
// # Worker
//
// The worker runs in two phases. Enumeration walks the tree in lexical order,
// pruning excluded directories, and publishes the file total. Processing then
// visits every enumerated file in that order. Each file is accounted for under
// a single lock acquisition: it is either fully counted (processed, possibly
// flagged, possibly skipped) or not counted at all.
//
// Files or directories that cannot be read are recorded as skipped and the scan
// goes on. A skipped file counts as processed so that a finished scan always
// ends with Processed == Total.
//
// # Cancellation
//
// Cancellation is cooperative. Cancel, or cancelling the context given to
// Start, stops the worker at the next file boundary. No mismatch is appended
// once cancellation has been observed.
package scanner
