package py

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Literal returns the Python literal rendering of the value.
//
// Rendering is total: every well-formed Value has exactly one literal form,
// and nothing here can fail except a sink write in [Value.Format].
func (v Value) Literal() string {
	var sb strings.Builder

	// strings.Builder never returns a write error.
	_ = v.Format(&sb)

	return sb.String()
}

// Format writes the Python literal rendering of the value to w.
// The only failure path is a write error from w itself.
//
// Integers render as plain decimal digits. Floats render in scientific
// notation with a 6-digit mantissa, except NaN and the infinities, which
// render as float('nan'), float('inf'), and float('-inf'). Strings are
// triple-quoted; embedded quote runs are written through verbatim. Lists
// and dicts render recursively with a comma after every element, which
// Python's grammar permits. Dict keys are emitted in sorted order so the
// rendering is deterministic.
func (v Value) Format(w io.Writer) error {
	switch v.Kind {
	case KindInt:
		_, err := io.WriteString(w, strconv.FormatInt(v.Int, 10))

		return err

	case KindUint:
		_, err := io.WriteString(w, strconv.FormatUint(v.Uint, 10))

		return err

	case KindFloat:
		_, err := io.WriteString(w, formatFloat(v.Float))

		return err

	case KindString:
		_, err := fmt.Fprintf(w, `"""%s"""`, v.Str)

		return err

	case KindList:
		return v.formatList(w)

	case KindDict:
		return v.formatDict(w)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, v.Kind)
	}
}

func (v Value) formatList(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}

	for _, elem := range v.List {
		if err := elem.Format(w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, ","); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "]")

	return err
}

func (v Value) formatDict(w io.Writer) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}

	keys := make([]string, 0, len(v.Dict))
	for k := range v.Dict {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		if err := Str(k).Format(w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, ":"); err != nil {
			return err
		}

		if err := v.Dict[k].Format(w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, ","); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}")

	return err
}

// formatFloat renders a float in d.dddddde±dd form, substituting the Python
// constructor calls for the non-finite values that scientific notation
// cannot express.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "float('nan')"
	case math.IsInf(f, 1):
		return "float('inf')"
	case math.IsInf(f, -1):
		return "float('-inf')"
	default:
		return strconv.FormatFloat(f, 'e', 6, 64)
	}
}
