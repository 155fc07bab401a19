package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/assetlint/pkg/scanner"
	"github.com/arthur-debert/assetlint/pkg/ui/output/styles"
)

// WriteText writes the human readable report for the selected page
func WriteText(w io.Writer, r Result, p Pagination) error {
	start, end, err := p.bounds(len(r.Mismatches))
	if err != nil {
		return err
	}

	var b strings.Builder
	header := styles.GetStyle("Header")
	label := styles.GetStyle("Label")
	value := styles.GetStyle("Value")
	indent := styles.GetStyle("Indent")

	b.WriteString(header.Render("Naming scan of " + r.Root))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		label.Render("files"), value.Render(fmt.Sprintf("%d/%d", r.Processed, r.Total)),
		label.Render("mismatches"), value.Render(fmt.Sprintf("%d", len(r.Mismatches))),
		label.Render("elapsed"), value.Render(r.Elapsed.Round(time.Millisecond).String()),
	)

	if r.State == scanner.Cancelled {
		b.WriteString(styles.GetStyle("Warning").Render("Scan was cancelled; results are partial."))
		b.WriteString("\n")
	}

	if len(r.Mismatches) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.GetStyle("Success").Render("No naming mismatches found."))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		category := styles.GetStyle("Category")
		path := styles.GetStyle("FilePath")
		for _, m := range r.Mismatches[start:end] {
			line := category.Render(m.Category) + " " + path.Render(m.RelPath)
			b.WriteString(indent.Render(line))
			b.WriteString("\n")
		}
		if pages := p.PageCount(len(r.Mismatches)); pages > 1 {
			page := p.Page
			if page <= 0 {
				page = 1
			}
			b.WriteString(styles.GetStyle("Page").Render(fmt.Sprintf("page %d / %d", page, pages)))
			b.WriteString("\n")
		}
	}

	if len(r.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.GetStyle("Warning").Render(fmt.Sprintf("%d entries could not be read:", len(r.Skipped))))
		b.WriteString("\n")
		muted := styles.GetStyle("Muted")
		for _, s := range r.Skipped {
			b.WriteString(indent.Render(s.Path + " " + muted.Render(errorText(s.Err))))
			b.WriteString("\n")
		}
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
