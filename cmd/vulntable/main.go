// Package main provides the entry point for the vulntable CLI.
//
// vulntable converts a vulnerability scan report (Trivy JSON output) into a
// pipe-delimited table with one row per finding.
//
// Usage:
//
//	vulntable <input-file>
//
// See --help for all available options.
package main

import "os"

// main is the entry point for vulntable.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
