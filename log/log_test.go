package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Level
	}{
		{input: "trace", want: LevelTrace},
		{input: "TRACE", want: LevelTrace},
		{input: "debug", want: LevelDebug},
		{input: "info", want: LevelInfo},
		{input: "WARN", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "bogus", want: DefaultLevel},
		{input: "", want: DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Format
	}{
		{input: "json", want: FormatJSON},
		{input: " JSON ", want: FormatJSON},
		{input: "text", want: FormatText},
		{input: "bogus", want: DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevels(t *testing.T) {
	t.Parallel()

	got := slices.Collect(Levels())

	want := []string{"trace", "debug", "info", "warn", "error"}
	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %q, want %q", got, want)
	}
}

func TestMake_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithPretty(false),
	)
	logger.Info("script generated", slog.Int("lines", 3))

	var record map[string]any

	err := json.Unmarshal(buf.Bytes(), &record)
	if err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	if record["msg"] != "script generated" {
		t.Errorf("msg = %v", record["msg"])
	}

	if record["level"] != "INFO" {
		t.Errorf("level = %v", record["level"])
	}

	if record["lines"] != float64(3) {
		t.Errorf("lines = %v", record["lines"])
	}
}

func TestMake_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithPretty(false))

	logger.Debug("hidden")

	if buf.Len() != 0 {
		t.Errorf("debug message emitted at info level: %q", buf.String())
	}

	logger = logger.Wrap(WithLevel(LevelTrace))
	logger.Trace("visible")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("trace label missing: %q", buf.String())
	}
}

func TestMake_TimeLayoutNone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(false),
		WithTimeLayout("none"),
	)
	logger.Info("stampless")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("timestamp emitted with layout none: %q", buf.String())
	}
}

func TestMake_Pretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithPretty(true))
	logger.Info("launch", slog.String("interpreter", "python3"))

	out := buf.String()

	for _, want := range []string{"INFO", "launch", "interpreter=", "python3"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q: %q", want, out)
		}
	}
}

func TestMake_PrettyWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithPretty(true)).
		With(slog.String("component", "builder"))
	logger.Warn("unbalanced blocks")

	if !strings.Contains(buf.String(), "component=") {
		t.Errorf("bound attribute missing: %q", buf.String())
	}
}

func TestZeroLogger(t *testing.T) {
	t.Parallel()

	var logger Logger

	// Must not panic.
	logger.Info("into the void")

	if logger.Level() != DefaultLevel {
		t.Errorf("zero Level() = %v", logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("zero Format() = %v", logger.Format())
	}
}
