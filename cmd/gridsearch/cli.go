package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is an error carrying the process exit code. Err, when set, is
// the cause and stays reachable through errors.Is / errors.As.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// configError wraps err as an exit-code-2 error without losing its chain.
func configError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error(), Err: err}
}

// usageError builds the exit-code-2 error used for bad flags and config.
func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Flags holds the validated command-line arguments.
type Flags struct {
	MapPath    string
	ConfigPath string
	LogFormat  string
	LogLevel   string
}

// parseFlags processes command-line arguments. It reports shouldExit when
// help was requested or no map was given.
func parseFlags(args []string, output io.Writer) (*Flags, bool, error) {
	flagSet := flag.NewFlagSet("gridsearch", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridsearch - shortest path and reachability over a character map.

Usage:
  gridsearch -map FILE [-config FILE] [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	mapFlag := flagSet.String("map", "", "Path to the character map.")
	configFlag := flagSet.String("config", "", "Path to an HCL run configuration.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}

	if *mapFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	logLevel := strings.ToLower(*logLevelFlag)
	if _, ok := levels[logLevel]; !ok {
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &Flags{
		MapPath:    *mapFlag,
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}, false, nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the process logger from validated flag values.
func newLogger(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levels[level]}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
