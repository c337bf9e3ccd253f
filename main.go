package main

import (
	"context"
	"os"

	"github.com/mikepurvis/advent-of-code/internal/logio"
)

func main() {
	log := logio.NewLogger(os.Stderr)
	log.ErrorIf(newRootCmd(log, calendar).ExecuteContext(context.Background()))
	os.Exit(log.ExitCode())
}
