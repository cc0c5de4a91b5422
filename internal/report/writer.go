package report

import (
	"bufio"
	"io"
	"iter"

	"github.com/nao1215/vulntable/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the document to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(doc *model.Document) (int, error)
}

// Emit writes each line followed by a newline to w, in sequence order.
// Output is buffered and flushed once the sequence is exhausted.
func Emit(w io.Writer, lines iter.Seq[string]) error {
	_, err := emit(w, lines)
	return err
}

// emit is Emit with a byte count.
func emit(w io.Writer, lines iter.Seq[string]) (int, error) {
	bw := bufio.NewWriter(w)
	var total int
	for line := range lines {
		n, err := bw.WriteString(line)
		total += n
		if err != nil {
			return total, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return total, err
		}
		total++
	}
	return total, bw.Flush()
}

// TableWriter writes documents as a pipe-delimited table.
type TableWriter struct {
	output io.Writer
}

// NewTableWriter creates a TableWriter that outputs to the given writer.
func NewTableWriter(output io.Writer) *TableWriter {
	return &TableWriter{output: output}
}

// Write renders doc and writes every line to the output.
func (w *TableWriter) Write(doc *model.Document) (int, error) {
	return emit(w.output, Render(doc))
}
