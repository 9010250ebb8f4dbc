package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"randompass/internal/domain"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const exhaustedMessage = "ERROR: Cannot generate password after MAX iterations. Consider lowering constraints."

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, domain.ErrMaxAttemptsExceeded) {
			fmt.Fprintln(stderr, exhaustedMessage)
		} else {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
		}
		return 1
	}
	return 0
}
