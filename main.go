package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"FractalZoom/coordinator"
	"FractalZoom/misc"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/google/gops/agent"
)

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout))
}

// run renders the frames described by args and returns the process exit status.
func run(name string, args []string, output io.Writer) int {
	logger := bslogger.NewLogger("Fractal", bslogger.Normal, nil)
	fmt.Fprintln(output, "Fractal v1.8")

	parsed, err := parseArguments(name, args, output)
	if misc.CheckError(err, logger, misc.Error) {
		return misc.ExitFailure
	}

	// Fails before anything is allocated when the dimensions are invalid
	c, err := coordinator.NewCoordinator(parsed.settings)
	if misc.CheckError(err, logger, misc.Error) {
		return misc.ExitFailure
	}
	defer func() {
		misc.CheckError(c.Close(), logger, misc.Warning)
	}()

	settings := c.Settings()
	fmt.Fprintf(output, "frames: %d\n", settings.FrameCount)
	fmt.Fprintf(output, "width: %d\n", settings.Width)
	fmt.Fprintf(output, "threads: %d\n", settings.ThreadCount)

	if parsed.diagnostics {
		if misc.CheckError(agent.Listen(agent.Options{}), logger, misc.Warning) {
			logger.Warning("Continuing without the gops agent")
		} else {
			defer agent.Close()
		}
	}

	buffer, err := c.Run()
	if misc.CheckError(err, logger, misc.Error) {
		return misc.ExitFailure
	}
	fmt.Fprintf(output, "compute time: %s\n", c.ComputeTime())

	if _, err := c.Export(buffer); misc.CheckError(err, logger, misc.Error) {
		return misc.ExitFailure
	}
	return 0
}
