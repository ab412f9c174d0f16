package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberjson/emberjson/scan"
)

// exitCode is set by whichever subcommand ran and read back by main after
// cmd.Execute returns. An error that reaches cobra's RunE error path is
// mapped by exitCodeFor instead: a *cliError carries its own code (3 for
// a bad option, 2 for unreadable or over-limit stdin), and any other
// error, such as cobra's own argument/flag errors, maps to exit code 3.
var exitCode int

const (
	exitSuccess       = 0
	exitMalformedJSON = 1
	exitProcessing    = 2
	exitBadOption     = 3

	maxInputBytes = 10 << 20 // 10 MiB
)

func exitCodeFor(err error) int {
	logger.Print(err)
	if ce, ok := err.(*cliError); ok {
		return ce.code
	}
	return exitBadOption
}

var logger = log.New(os.Stderr, "emberjson: ", 0)

type cliOptions struct {
	dialect  string
	comments bool
	trailing bool
	maxDepth int
	indent   int
	compact  bool
}

func (o *cliOptions) scanOpts() ([]scan.Option, error) {
	var d scan.Dialect
	switch o.dialect {
	case "rfc4627":
		d = scan.RFC4627
	case "rfc8259", "":
		d = scan.RFC8259
	case "json5":
		d = scan.JSON5
	default:
		return nil, invalidOption("unknown dialect %q (want rfc4627, rfc8259, or json5)", o.dialect)
	}
	return []scan.Option{
		scan.WithDialect(d),
		scan.WithComments(o.comments),
		scan.WithTrailingCommas(o.trailing),
		scan.WithMaxDepth(o.maxDepth),
	}, nil
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{maxDepth: scan.DefaultMaxDepth}

	root := &cobra.Command{
		Use:           "emberjson",
		Short:         "Validate and reformat JSON/JSON5 documents read from stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dialect, "dialect", "rfc8259", "grammar: rfc4627, rfc8259, or json5")
	root.PersistentFlags().BoolVar(&opts.comments, "comments", false, "allow // and /* */ comments")
	root.PersistentFlags().BoolVar(&opts.trailing, "trailing-commas", false, "allow a trailing comma before ] or }")
	root.PersistentFlags().IntVar(&opts.maxDepth, "max-depth", scan.DefaultMaxDepth, "maximum nesting depth")

	root.AddCommand(newValidateCommand(opts))
	root.AddCommand(newFormatCommand(opts))
	return root
}

func invalidOption(format string, args ...any) error {
	return &cliError{code: exitBadOption, format: format, args: args}
}

type cliError struct {
	code   int
	format string
	args   []any
}

func (e *cliError) Error() string { return fmt.Sprintf(e.format, e.args...) }
