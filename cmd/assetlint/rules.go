package assetlint

import (
	"fmt"
	"os"

	"github.com/arthur-debert/assetlint/pkg/commands"
	"github.com/arthur-debert/assetlint/pkg/report"
	"github.com/spf13/cobra"
)

func newRulesCmd(global *globalOptions) *cobra.Command {
	var (
		configFile   string
		raw          bool
		noUserConfig bool
	)

	cmd := &cobra.Command{
		Use:     "rules [dir]",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			result, err := commands.ListRules(commands.ListRulesOptions{
				Root:           dir,
				ConfigFile:     configFile,
				SkipUserConfig: noUserConfig,
			})
			if err != nil {
				return fmt.Errorf(MsgErrListRules, err)
			}

			out := result.Markdown
			if !raw {
				out = report.RenderMarkdown(out, report.RenderOptions{
					Plain: global.noColor || !isTerminal(os.Stdout),
				})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", MsgFlagConfig)
	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)
	cmd.Flags().BoolVar(&noUserConfig, "no-user-config", false, MsgFlagNoUserCfg)

	return cmd
}
