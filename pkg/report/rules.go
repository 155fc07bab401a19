package report

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/assetlint/pkg/rules"
	"github.com/charmbracelet/glamour"
)

// RulesMarkdown renders the effective rule set as a markdown table
func RulesMarkdown(ruleList []rules.NamingRule, opts rules.Options, sources []string) string {
	var b strings.Builder

	b.WriteString("# Naming rules\n\n")
	dialect := opts.Dialect
	if dialect == "" {
		dialect = rules.DialectRE2
	}
	caseNote := "case-sensitive"
	if opts.IgnoreExtensionCase {
		caseNote = "case-insensitive"
	}
	fmt.Fprintf(&b, "Pattern dialect: **%s**. Extension matching is %s. Files ending in `%s` are never checked.\n\n",
		dialect, caseNote, rules.MetaExtension)

	if len(ruleList) == 0 {
		b.WriteString("_No rules configured: every file conforms._\n")
	} else {
		b.WriteString("| # | Category | Extension | Name |\n")
		b.WriteString("|---|----------|-----------|------|\n")
		for i, r := range ruleList {
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, cell(r.Category), codeCell(r.ExtensionPattern), codeCell(r.NamePattern))
		}
	}

	if len(sources) > 0 {
		b.WriteString("\n## Sources\n\n")
		for _, s := range sources {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	return b.String()
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

func codeCell(s string) string {
	return "`" + strings.ReplaceAll(s, "|", `\|`) + "`"
}

// RenderOptions controls terminal markdown rendering
type RenderOptions struct {
	// Plain disables colors and uses the notty style
	Plain bool
	// Width wraps text; 0 leaves glamour's default
	Width int
}

// RenderMarkdown renders markdown for the terminal. On renderer failure the
// markdown is returned unchanged.
func RenderMarkdown(md string, opts RenderOptions) string {
	var options []glamour.TermRendererOption
	if opts.Plain {
		options = append(options, glamour.WithStandardStyle("notty"))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if opts.Width > 0 {
		options = append(options, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
