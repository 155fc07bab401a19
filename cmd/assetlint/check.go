package assetlint

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/assetlint/pkg/commands"
	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/report"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	configFile   string
	format       string
	page         int
	pageSize     int
	all          bool
	noProgress   bool
	exitZero     bool
	noUserConfig bool
	exclude      []string
}

func newCheckCmd() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check [dir]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runCheck(cmd, dir, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", MsgFlagConfig)
	cmd.Flags().StringVarP(&flags.format, "format", "f", string(report.FormatText), MsgFlagFormat)
	cmd.Flags().IntVarP(&flags.page, "page", "p", 1, MsgFlagPage)
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, MsgFlagPageSize)
	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, MsgFlagAll)
	cmd.Flags().BoolVar(&flags.noProgress, "no-progress", false, MsgFlagNoProgress)
	cmd.Flags().BoolVar(&flags.exitZero, "exit-zero", false, MsgFlagExitZero)
	cmd.Flags().BoolVar(&flags.noUserConfig, "no-user-config", false, MsgFlagNoUserCfg)
	cmd.Flags().StringArrayVarP(&flags.exclude, "exclude", "e", nil, MsgFlagExclude)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(report.Formats))
		for _, f := range report.Formats {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runCheck(cmd *cobra.Command, dir string, flags *checkFlags) error {
	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("page-size") && flags.pageSize < 1 {
		return errors.Newf(errors.ErrInvalidInput, "page size must be at least 1, got %d", flags.pageSize)
	}
	if flags.page < 1 {
		return errors.Newf(errors.ErrInvalidInput, "page must be at least 1, got %d", flags.page)
	}

	opts := commands.CheckOptions{
		Root:           dir,
		ConfigFile:     flags.configFile,
		ExcludeDirs:    flags.exclude,
		SkipUserConfig: flags.noUserConfig,
	}
	if !flags.noProgress && isTerminal(os.Stderr) {
		opts.Progress = newProgressBar(cmd.ErrOrStderr(), progressInterval)
	}

	result, err := commands.Check(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf(MsgErrCheck, err)
	}

	pageSize := flags.pageSize
	if !cmd.Flags().Changed("page-size") {
		pageSize = result.Config.PageSize
	}
	pagination := report.Pagination{Page: flags.page, Size: pageSize, All: flags.all}

	if err := writeReport(cmd.OutOrStdout(), format, result.Result, pagination); err != nil {
		return fmt.Errorf(MsgErrWriteReport, err)
	}

	r := result.Result
	if result.Cancelled() {
		return errors.Newf(errors.ErrScanCancelled, MsgErrScanStopped, r.Root, r.Processed, r.Total).
			WithDetail("scan", r.ID)
	}
	if result.HasMismatches() && !flags.exitZero {
		return errors.Newf(errors.ErrMismatchesFound, MsgErrMismatches, len(r.Mismatches))
	}
	return nil
}

// writeReport renders r in the chosen format. Pagination applies to text only.
func writeReport(w io.Writer, format report.Format, r report.Result, p report.Pagination) error {
	switch format {
	case report.FormatJSON:
		return report.WriteJSON(w, r)
	case report.FormatCheckstyle:
		return report.WriteCheckstyle(w, r)
	default:
		return report.WriteText(w, r, p)
	}
}
