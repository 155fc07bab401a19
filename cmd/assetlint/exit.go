package assetlint

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/ui/output/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// HandleError prints a failed command's error to w and returns the exit
// status for it. A nil error exits 0.
func HandleError(rootCmd *cobra.Command, err error, w io.Writer) int {
	if err == nil {
		return 0
	}

	// Mismatches are already in the report
	if errors.IsErrorCode(err, errors.ErrMismatchesFound) {
		return 1
	}

	details := errors.GetErrorDetails(err)
	log.Debug().
		Str("code", string(errors.GetErrorCode(err))).
		Fields(details).
		Msg("Command failed")

	errorStyle := styles.GetStyle("Error")
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

	switch {
	case errors.IsConfigError(err):
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, MsgErrDetailFormat, k, details[k])
		}
		fmt.Fprintln(w, MsgHintConfig)
	case errors.GetErrorCode(err) == errors.ErrUnknown:
		// Usage errors come from cobra and are not coded
		fmt.Fprintln(w)
		rootCmd.SetOut(w)
		_ = rootCmd.Usage()
	}

	return 1
}
