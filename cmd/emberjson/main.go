// Command emberjson is a scriptable command-line front end over the
// scan/value core, separate from it so the core stays embeddable without
// pulling in cobra, pflag, or any other CLI dependency.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return exitCodeFor(err)
	}
	return exitCode
}
