package assetlint

import (
	"fmt"

	"github.com/arthur-debert/assetlint/pkg/commands"
	"github.com/arthur-debert/assetlint/pkg/config"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var (
		write  bool
		format string
	)

	cmd := &cobra.Command{
		Use:     "gen-config [dir]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFormat, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			result, err := commands.GenConfig(commands.GenConfigOptions{
				Dir:    dir,
				Write:  write,
				Format: cfgFormat,
			})
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}

			if !write {
				_, err = fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
				return err
			}
			for _, path := range result.FilesWritten {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVar(&format, "format", string(config.FormatTOML), MsgFlagConfigFmt)

	return cmd
}
