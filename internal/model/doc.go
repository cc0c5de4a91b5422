// Package model defines the data structures of a vulnerability scan report.
//
// This package contains the following types:
//   - Document: The whole parsed report, an ordered list of results
//   - Result: One scanned target and the findings reported for it
//   - Finding: A single vulnerability match
//
// Values of these types are built once by the scanreport package and are
// treated as read-only afterwards. Every field has a usable zero value, so
// consumers never need to check for missing data.
package model
