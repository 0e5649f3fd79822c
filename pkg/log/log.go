// Package log provides slog handler construction for the CLI.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

const (
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	JSONFormat   = "json"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// CreateHandlerWithStrings creates a [slog.Handler] writing to w, using
// string representations of the log level and format.
//
// The text format falls back to logfmt when w is not a terminal, so that
// redirected logs stay machine-readable.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	formatter, err := parseFormatter(w, logFormat)
	if err != nil {
		return nil, err
	}

	h := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: formatter != charmlog.TextFormatter,
	})

	return h, nil
}

// ParseLevel converts a level string into a [charmlog.Level].
func ParseLevel(logLevel string) (charmlog.Level, error) {
	switch strings.ToLower(logLevel) {
	case "debug":
		return charmlog.DebugLevel, nil
	case "info":
		return charmlog.InfoLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "error":
		return charmlog.ErrorLevel, nil
	}

	return charmlog.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, logLevel)
}

func parseFormatter(w io.Writer, logFormat string) (charmlog.Formatter, error) {
	switch strings.ToLower(logFormat) {
	case TextFormat, "":
		if !isTerminal(w) {
			return charmlog.LogfmtFormatter, nil
		}

		return charmlog.TextFormatter, nil
	case LogfmtFormat:
		return charmlog.LogfmtFormatter, nil
	case JSONFormat:
		return charmlog.JSONFormatter, nil
	}

	return charmlog.TextFormatter, fmt.Errorf("%w: %q", ErrInvalidLogFormat, logFormat)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
