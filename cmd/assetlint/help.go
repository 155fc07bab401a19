package assetlint

import (
	"embed"
	"os"

	"github.com/arthur-debert/assetlint/pkg/cobrax/topics"
	"github.com/arthur-debert/assetlint/pkg/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// initTopics installs the help command serving the embedded topics
func initTopics(rootCmd *cobra.Command, global *globalOptions) {
	renderer := topics.RendererFunc(func(content, format string) string {
		if format != ".md" {
			return content
		}
		return report.RenderMarkdown(content, report.RenderOptions{
			Plain: global.noColor || !isTerminal(os.Stdout),
		})
	})

	if _, err := topics.Initialize(rootCmd, topicsFS, "topics", topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
