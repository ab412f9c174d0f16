package main

import (
	"bytes"
	"io"
	"os"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/spf13/cobra"

	"github.com/emberjson/emberjson/value"
)

// stdout is where "format" writes its result. Tests swap it for a
// bytes.Buffer to capture output without touching the process's real
// standard output.
var stdout io.Writer = os.Stdout

// newFormatCommand builds the "format" subcommand: it parses stdin the
// same way "validate" does, then re-emits the resulting tree as
// standard JSON: indented by --indent spaces per level (0 gives compact
// output with no inserted whitespace), or — with --compact — as the
// RFC 8785 canonical byte sequence produced by the webpki.org reference
// implementation.
func newFormatCommand(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Read a JSON/JSON5 document from stdin and re-emit it as standard JSON",
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
			defer value.Free(root, value.GCAllocator{})

			indent := opts.indent
			if opts.compact {
				indent = 0
			}
			var buf bytes.Buffer
			if err := emit(&buf, src, root, indent); err != nil {
				logger.Print(err)
				exitCode = exitProcessing
				return nil
			}

			out := buf.Bytes()
			if opts.compact {
				canon, err := jsoncanonicalizer.Transform(out)
				if err != nil {
					logger.Printf("canonicalizing output: %v", err)
					exitCode = exitProcessing
					return nil
				}
				out = canon
			}

			stdout.Write(out)
			if indent > 0 {
				stdout.Write([]byte{'\n'})
			}
			exitCode = exitSuccess
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.indent, "indent", 2, "spaces per nesting level (ignored with --compact)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "emit RFC 8785 canonical compact JSON")
	return cmd
}
