package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// CheckstyleVersion is the schema version written in the root element
const CheckstyleVersion = "4.3"

// WriteCheckstyle writes mismatches as checkstyle XML, one <file> per path.
// Skipped entries are reported with severity "info".
func WriteCheckstyle(w io.Writer, r Result) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", CheckstyleVersion)

	for _, m := range r.Mismatches {
		file := root.CreateElement("file")
		file.CreateAttr("name", m.Path)

		e := file.CreateElement("error")
		e.CreateAttr("line", "0")
		e.CreateAttr("severity", "warning")
		e.CreateAttr("message", fmt.Sprintf("file name does not follow the %s naming convention", m.Category))
		e.CreateAttr("source", "assetlint."+sourceName(m.Category))
	}

	for _, s := range r.Skipped {
		file := root.CreateElement("file")
		file.CreateAttr("name", s.Path)

		e := file.CreateElement("error")
		e.CreateAttr("line", "0")
		e.CreateAttr("severity", "info")
		e.CreateAttr("message", "could not be read: "+errorText(s.Err))
		e.CreateAttr("source", "assetlint.skipped")
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func sourceName(category string) string {
	name := strings.ToLower(strings.Join(strings.Fields(category), "_"))
	if name == "" {
		return "unnamed"
	}
	return name
}
