package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"yisangsay/internal/logger"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	verbose bool
	log     *logger.LogEntry

	isTerminal func() bool
	sleep      func(context.Context, time.Duration) error
	copyText   func(string) error
}

func newApp() *app {
	return &app{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		isTerminal: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		copyText: clipboard.WriteAll,
	}
}

// runError marks failures that happen after the arguments were accepted;
// they are reported without the usage text.
type runError struct {
	err error
}

func (e runError) Error() string { return e.err.Error() }
func (e runError) Unwrap() error { return e.err }

// execute runs the command line and returns the process exit code.
func (a *app) execute(ctx context.Context, args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintln(a.errOut, "Error:", err)
	var re runError
	if !errors.As(err, &re) {
		fmt.Fprint(a.errOut, cmd.UsageString())
	}
	return 1
}
