package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/emberjson/emberjson/scan"
	"github.com/emberjson/emberjson/value"
)

func newValidateCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Read a JSON/JSON5 document from stdin and report whether it is well-formed",
		RunE: func(cmd *cobra.Command, args []string) error {
			scanOpts, err := opts.scanOpts()
			if err != nil {
				return err
			}
			src, err := readStdin()
			if err != nil {
				return err
			}
			root, perr := value.Parse(src, value.GCAllocator{}, scanOpts...)
			if perr != nil {
				return reportParseError(perr)
			}
			value.Free(root, value.GCAllocator{})
			exitCode = exitSuccess
			return nil
		},
	}
}

// reportParseError classifies a value.Parse failure into an exit code
// and logs a diagnostic, then returns nil so cobra does not also print
// its own usage/error banner — the exit code is the contract here, not
// cobra's error formatting.
func reportParseError(perr error) error {
	var serr *scan.SyntacticError
	if errors.As(perr, &serr) {
		logger.Printf("%s (byte offset %d)", serr.Description, serr.ByteOffset)
		exitCode = exitMalformedJSON
		return nil
	}
	var verr *value.SemanticError
	if errors.As(perr, &verr) {
		logger.Printf("%s (byte offset %d)", verr.Description, verr.ByteOffset)
		exitCode = exitProcessing
		return nil
	}
	logger.Print(perr)
	exitCode = exitProcessing
	return nil
}
