package report

import (
	"iter"
	"strings"

	"github.com/nao1215/vulntable/internal/model"
)

// Table header lines. These are fixed and do not depend on the content.
const (
	HeaderLine    = "| Vulnerability | Severity | Package | Fix Available |"
	SeparatorLine = "|---------------|---------|--------|---------------|"
)

// Render returns the table lines for doc: the header, the separator, then one
// row per finding in document order. Rows are produced as the sequence is
// consumed. A nil document yields only the two header lines.
func Render(doc *model.Document) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(HeaderLine) || !yield(SeparatorLine) {
			return
		}
		if doc == nil {
			return
		}
		for _, result := range doc.Results {
			for _, finding := range result.Vulnerabilities {
				if !yield(FormatRow(finding)) {
					return
				}
			}
		}
	}
}

// FormatRow formats one finding as a table row.
// Values are inserted as-is: no escaping, truncation or padding.
func FormatRow(f model.Finding) string {
	var b strings.Builder
	b.Grow(len(f.VulnerabilityID) + len(f.Severity) + len(f.PkgName) + len(f.FixedVersion) + 13)
	b.WriteString("| ")
	b.WriteString(f.VulnerabilityID)
	b.WriteString(" | ")
	b.WriteString(f.Severity)
	b.WriteString(" | ")
	b.WriteString(f.PkgName)
	b.WriteString(" | ")
	b.WriteString(f.FixedVersion)
	b.WriteString(" |")
	return b.String()
}
