package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/geomass/internal/cli"
	"github.com/aretw0/geomass/internal/logging"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries the process streams and the logger resolved by the command
// that ran, so errors are reported at the configured level.
type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// execute runs the command tree and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		logger := a.logger
		if logger == nil {
			logger = logging.New(stderr, slog.LevelInfo)
		}
		cli.ReportError(logger, err)
	}
	return cli.ExitCode(err)
}
