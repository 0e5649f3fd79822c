package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/mcsgraph/pkg/log"
)

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level  string
		format string
	}{
		"text":      {level: "warn", format: "text"},
		"logfmt":    {level: "debug", format: "logfmt"},
		"json":      {level: "info", format: "json"},
		"no format": {level: "error", format: ""},
		"warning":   {level: "warning", format: "text"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := log.CreateHandlerWithStrings(&bytes.Buffer{}, tc.level, tc.format)
			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestCreateHandlerWithStrings_Invalid(t *testing.T) {
	t.Parallel()

	_, err := log.CreateHandlerWithStrings(&bytes.Buffer{}, "verbose", "text")
	require.ErrorIs(t, err, log.ErrInvalidLogLevel)

	_, err = log.CreateHandlerWithStrings(&bytes.Buffer{}, "info", "yaml")
	require.ErrorIs(t, err, log.ErrInvalidLogFormat)
}

func TestCreateHandlerWithStrings_Level(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	h, err := log.CreateHandlerWithStrings(out, "warn", "logfmt")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), "kept")
}
