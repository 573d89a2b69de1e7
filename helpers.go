package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"FractalZoom/coordinator"
)

const usage = "USAGE: %s [flags] frame_width num_frames num_threads\n"

type arguments struct {
	diagnostics bool
	settings    coordinator.Settings
}

// parseArguments reads the three positional values and the optional flags. Flags that were set
// explicitly override the values loaded from -settings.
func parseArguments(name string, args []string, output io.Writer) (arguments, error) {
	var (
		diagnostics, export              bool
		logFile, runName, savePath, file string
	)

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintf(output, usage, name)
		flags.PrintDefaults()
	}
	flags.BoolVar(&diagnostics, "gops", false, "Start a gops agent while the run is in progress")
	flags.BoolVar(&export, "export", true, "Write small runs out as BMP files")
	flags.StringVar(&logFile, "log", "", "Also write the coordinator log to this file")
	flags.StringVar(&runName, "run", "", "Subdirectory of the save path to write frames to")
	flags.StringVar(&savePath, "save", "", "Directory to write frames to (default working directory)")
	flags.StringVar(&file, "settings", "", "Json file with render settings")

	if err := flags.Parse(args); err != nil {
		return arguments{}, err
	}
	if flags.NArg() != 3 {
		flags.Usage()
		return arguments{}, fmt.Errorf("expected 3 arguments, got %d", flags.NArg())
	}

	settings, err := coordinator.NewSettings(file)
	if err != nil {
		return arguments{}, err
	}

	positional := []struct {
		name  string
		value *int
	}{
		{"frame_width", &settings.Width},
		{"num_frames", &settings.FrameCount},
		{"num_threads", &settings.ThreadCount},
	}
	for i, p := range positional {
		*p.value, err = strconv.Atoi(flags.Arg(i))
		if err != nil {
			return arguments{}, fmt.Errorf("%s must be an integer, got %q", p.name, flags.Arg(i))
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "export":
			settings.SkipExport = !export
		case "log":
			settings.LogFile = logFile
		case "run":
			settings.RunName = runName
		case "save":
			settings.SavePath = savePath
		}
	})

	return arguments{diagnostics: diagnostics, settings: settings}, nil
}
