// Package scanreport loads vulnerability scan reports from disk.
//
// A report is a JSON document of the form produced by Trivy's JSON output:
//
//	{"Results": [{"Target": "...", "Vulnerabilities": [{"VulnerabilityID": "...", ...}]}]}
//
// Loading is permissive about shape. Every key is optional, collections that
// are missing or not arrays become empty, and finding fields that are missing,
// null, or not strings become empty strings. Only two conditions are errors:
// the file cannot be read, or its contents are not a JSON object.
//
// The filesystem is an afero.Fs so that callers (and tests) can load from an
// in-memory filesystem as easily as from the OS.
package scanreport
