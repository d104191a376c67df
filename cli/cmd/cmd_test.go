package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAssemble(t *testing.T) {
	t.Parallel()

	source := "import sys\nif True:\n    print('hi')\n"

	program, err := assemble(strings.NewReader(source))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	// Lines pass through verbatim, original layout included.
	if got := program.String(); got != source {
		t.Errorf("got %q, want %q", got, source)
	}
}

func TestDecodeSeries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		doc  string
		want string
	}{
		{
			name: "yaml",
			file: "series.yaml",
			doc:  "[1, 2, 3]",
			want: "[1,2,3,]",
		},
		{
			name: "json",
			file: "series.json",
			doc:  "[1, 2]",
			want: "[1.000000e+00,2.000000e+00,]",
		},
		{
			name: "extensionless defaults to yaml",
			file: "series",
			doc:  "- 4\n- 5\n",
			want: "[4,5,]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}

			val, err := decodeSeries(path)
			if err != nil {
				t.Fatalf("decodeSeries: %v", err)
			}

			if got := val.Literal(); got != tt.want {
				t.Errorf("Literal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeSeries_Missing(t *testing.T) {
	t.Parallel()

	_, err := decodeSeries(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrReadSource) {
		t.Errorf("error = %v, want ErrReadSource", err)
	}
}

func TestError_Format(t *testing.T) {
	t.Parallel()

	base := NewError("decode data series")

	if got := base.Error(); got != "decode data series" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := base.Wrap(errors.New("unexpected token"))

	if got := wrapped.Error(); got != "decode data series: unexpected token" {
		t.Errorf("Error() = %q", got)
	}

	if wrapped.Unwrap() == nil {
		t.Error("Unwrap() lost the cause")
	}

	if !errors.Is(wrapped, base) {
		t.Error("wrapped error does not match its sentinel")
	}
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	err := ErrDecodeData.Wrap(errors.New("boom"))

	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Error("errors.As failed for *Error")
	}
}
