// Package report renders scan report documents as a pipe-delimited table.
//
// Rendering is split in two steps:
//   - Render turns a Document into a lazy sequence of lines
//   - Emit writes a sequence of lines to an io.Writer
//
// TableWriter composes both for callers that just want the table written.
// Rendering itself never fails; only the destination writer can.
package report
