// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"fxtools/internal/cli"
	"fxtools/internal/cmdutil"
	"fxtools/internal/fastx"
	"fxtools/internal/output"
)

// Exit statuses.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext executes one fxtools command line and returns the process exit
// status. Reports go to stdout (buffered); warnings and errors to stderr.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root := NewRootCommand(outw, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(parent)
	ferr := outw.Flush()

	if err == nil {
		err = ferr
	}
	return exitCode(parent, err, stderr)
}

func exitCode(ctx context.Context, err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return ExitOK
	case output.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return ExitCanceled
	case isUsage(err):
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	default:
		cmdutil.Errorf(stderr, "%v", err)
		return ExitRuntime
	}
}

func isUsage(err error) bool {
	var ue *cli.UsageError
	if errors.As(err, &ue) {
		return true
	}
	var fe *fastx.Error
	if errors.As(err, &fe) {
		return fe.Kind == fastx.KindConfig
	}
	// cobra reports unknown subcommands as plain errors.
	return strings.HasPrefix(err.Error(), "unknown command")
}
