package py

import (
	"errors"
	"strings"
	"testing"
)

func TestFromYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "sequence",
			doc:  "[1, 2, 3]",
			want: "[1,2,3,]",
		},
		{
			name: "block sequence",
			doc:  "- 1\n- 2\n- 3\n",
			want: "[1,2,3,]",
		},
		{
			name: "mapping",
			doc:  "hello: [56, 12]\nthere: [6, 2]\n",
			want: `{"""hello""":[56,12,],"""there""":[6,2,],}`,
		},
		{
			name: "floats",
			doc:  "[0.5, 1.5]",
			want: "[5.000000e-01,1.500000e+00,]",
		},
		{
			name: "strings",
			doc:  `[a, b]`,
			want: `["""a""","""b""",]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			val, err := FromYAML(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("FromYAML: %v", err)
			}

			if got := val.Literal(); got != tt.want {
				t.Errorf("Literal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromYAML_Errors(t *testing.T) {
	t.Parallel()

	if _, err := FromYAML(strings.NewReader("hello: [1, 2")); err == nil {
		t.Error("malformed document decoded")
	}

	_, err := FromYAML(strings.NewReader("[true, false]"))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("boolean scalar error = %v, want ErrUnsupported", err)
	}
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	val, err := FromJSON(strings.NewReader(`{"xs": [1, 2]}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	// encoding/json decodes every number as float64.
	want := `{"""xs""":[1.000000e+00,2.000000e+00,],}`
	if got := val.Literal(); got != want {
		t.Errorf("Literal() = %q, want %q", got, want)
	}
}

func TestFromJSON_Error(t *testing.T) {
	t.Parallel()

	if _, err := FromJSON(strings.NewReader(`{"xs": [1,`)); err == nil {
		t.Error("malformed document decoded")
	}
}
