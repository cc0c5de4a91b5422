package model

import "github.com/samber/lo"

// Document is the root of a parsed scan report.
type Document struct {
	// Results holds the scan results in document order.
	Results []Result `json:"Results"`
}

// Result groups the findings reported for one scanned target,
// such as an image layer, a lock file or a filesystem path.
type Result struct {
	// Target names the scanned artifact. It may be empty.
	Target string `json:"Target"`

	// Vulnerabilities holds the findings in document order.
	Vulnerabilities []Finding `json:"Vulnerabilities"`
}

// Finding represents one vulnerability match.
// Fields that were missing in the source report are empty strings.
type Finding struct {
	// VulnerabilityID is the advisory identifier, e.g. "CVE-2023-0001".
	VulnerabilityID string `json:"VulnerabilityID"`

	// Severity is the severity label exactly as reported (e.g. "HIGH").
	Severity string `json:"Severity"`

	// PkgName is the name of the affected package.
	PkgName string `json:"PkgName"`

	// FixedVersion is the first version containing a fix.
	// An empty string means no fix is available.
	FixedVersion string `json:"FixedVersion"`
}

// FindingCount returns the total number of findings across all results.
func (d *Document) FindingCount() int {
	if d == nil {
		return 0
	}
	return lo.SumBy(d.Results, func(r Result) int {
		return len(r.Vulnerabilities)
	})
}

// IsEmpty reports whether the document contains no findings at all.
func (d *Document) IsEmpty() bool {
	return d.FindingCount() == 0
}
