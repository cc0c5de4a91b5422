package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nao1215/vulntable/internal/log"
	"github.com/nao1215/vulntable/internal/report"
	"github.com/nao1215/vulntable/internal/scanreport"
)

const appName = "vulntable"

// Process exit codes.
const (
	exitSuccess = 0
	exitFailure = 1
)

// ErrUsage is returned when the command line does not name exactly one input file.
var ErrUsage = errors.New("usage: " + appName + " <input-file>")

// NewRootCmd creates the root command for vulntable, reading from the OS filesystem.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

// newRootCmd creates the root command reading input files from fsys.
func newRootCmd(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName + " <input-file>",
		Short: "Convert a vulnerability scan report into a table",
		Long: `vulntable reads a vulnerability scan report in Trivy JSON format and prints
a pipe-delimited table with one row per finding:

  | Vulnerability | Severity | Package | Fix Available |
  |---------------|---------|--------|---------------|
  | CVE-2023-0001 | HIGH | libfoo | 1.2.3 |

Rows follow the order of the report. Missing fields are left empty.

Examples:
  # Print the table for a Trivy report
  trivy image --format json -o scan.json alpine:3.18
  vulntable scan.json

  # Show debug logs on stderr
  vulntable --verbose scan.json`,
		Version:       getVersion(),
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, fsys, args[0])
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// validateArgs requires exactly one positional argument.
func validateArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return fmt.Errorf("%w (missing input file)", ErrUsage)
	case len(args) > 1:
		return fmt.Errorf("%w (expected 1 argument, got %d)", ErrUsage, len(args))
	}
	return nil
}

// runRootCmd loads the report at path and writes its table to the command output.
// Nothing is written to the output unless the report loads successfully.
func runRootCmd(cmd *cobra.Command, fsys afero.Fs, path string) error {
	logger := log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	doc, err := scanreport.Load(fsys, path)
	if err != nil {
		return err
	}
	logger.Debug("scan report loaded",
		"path", path,
		"results", len(doc.Results),
		"findings", doc.FindingCount(),
	)
	for _, result := range doc.Results {
		logger.Debug("result", "target", result.Target, "findings", len(result.Vulnerabilities))
	}

	n, err := report.NewTableWriter(cmd.OutOrStdout()).Write(doc)
	if err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	logger.Debug("table written", "bytes", n)
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// run executes the CLI with the given arguments and returns the process exit code.
// Errors are printed to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	return execute(NewRootCmd(), args, stdout, stderr)
}

// execute runs cmd with the given arguments and streams.
func execute(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	return exitSuccess
}
