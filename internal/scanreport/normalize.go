package scanreport

import (
	"github.com/samber/lo"

	"github.com/nao1215/vulntable/internal/model"
)

// JSON keys of the Trivy report format.
const (
	keyResults         = "Results"
	keyTarget          = "Target"
	keyVulnerabilities = "Vulnerabilities"
	keyVulnerabilityID = "VulnerabilityID"
	keySeverity        = "Severity"
	keyPkgName         = "PkgName"
	keyFixedVersion    = "FixedVersion"
)

// newDocument builds a Document from a decoded JSON object.
// This is the only place that deals with missing or mistyped values.
func newDocument(root map[string]any) *model.Document {
	return &model.Document{
		Results: lo.Map(list(root[keyResults]), func(v any, _ int) model.Result {
			return newResult(v)
		}),
	}
}

// newResult builds a Result. A non-object entry becomes a Result with no findings.
func newResult(v any) model.Result {
	obj, ok := v.(map[string]any)
	if !ok {
		return model.Result{Vulnerabilities: []model.Finding{}}
	}
	return model.Result{
		Target: text(obj[keyTarget]),
		Vulnerabilities: lo.Map(list(obj[keyVulnerabilities]), func(v any, _ int) model.Finding {
			return newFinding(v)
		}),
	}
}

// newFinding builds a Finding. A non-object entry becomes a Finding
// with every field empty, so it still occupies a row.
func newFinding(v any) model.Finding {
	obj, _ := v.(map[string]any)
	return model.Finding{
		VulnerabilityID: text(obj[keyVulnerabilityID]),
		Severity:        text(obj[keySeverity]),
		PkgName:         text(obj[keyPkgName]),
		FixedVersion:    text(obj[keyFixedVersion]),
	}
}

// list returns v as a JSON array, or nil if it is anything else.
func list(v any) []any {
	items, _ := v.([]any)
	return items
}

// text returns v as a string. Non-string values, null included, are treated
// as absent rather than coerced.
func text(v any) string {
	s, _ := v.(string)
	return s
}
