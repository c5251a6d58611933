// Command gridsearch runs the search engines over a character map.
//
// The map is read from -map; every rune is a cell. An optional HCL file
// (-config) names the start and goal markers, the wall runes, the
// connectivity and the search mode:
//
//	start        = "S"
//	goal         = "E"
//	walls        = "#"
//	connectivity = 4
//	mode         = "shortest"   # or "reach"
//	max_cost     = width + height
//
// The expressions may refer to the map dimensions as width and height.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// main is the entrypoint for the gridsearch command.
func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command so tests can drive it with their own writers.
func run(outW, logW io.Writer, args []string) error {
	flags, shouldExit, err := parseFlags(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(logW, flags.LogFormat, flags.LogLevel)
	a, err := newApp(logger, flags)
	if err != nil {
		return err
	}
	return a.Run(outW)
}
