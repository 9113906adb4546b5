// internal/appshell/shell.go
package appshell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitInterrupted is the status of a run stopped by SIGINT/SIGTERM.
const ExitInterrupted = 130

// RunFunc executes one command line and returns its exit status.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs the process command line through Exec and exits with its status.
func Main(run RunFunc) {
	os.Exit(Exec(context.Background(), os.Args[1:], os.Stdout, os.Stderr, run))
}

// Exec runs argv under a context cancelled by the first SIGINT/SIGTERM. A
// second signal exits at once: a read blocked on a silent stdin does not
// observe cancellation. An empty argv asks for help, and a cancelled run
// never reports success.
func Exec(parent context.Context, argv []string, stdout, stderr io.Writer, run RunFunc) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	done := make(chan struct{})
	defer close(done)
	go watch(sigs, cancel, done, stderr)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = ExitInterrupted
	}
	return code
}

func watch(sigs <-chan os.Signal, cancel context.CancelFunc, done <-chan struct{}, stderr io.Writer) {
	select {
	case <-sigs:
		cancel()
	case <-done:
		return
	}
	select {
	case <-sigs:
		_, _ = fmt.Fprintln(stderr, "interrupted again, exiting")
		os.Exit(ExitInterrupted)
	case <-done:
	}
}
