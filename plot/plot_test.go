package plot

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/ardnew/pyscribe/py"
)

func TestAxes_Script(t *testing.T) {
	t.Parallel()

	p := py.New()

	On(p).
		ImportPyplot().
		PlotXYStyle(
			py.MustFrom([]int{0, 1, 2}),
			py.MustFrom([]int{0, 1, 4}),
			"+",
		).
		Show()

	want := []string{
		"import matplotlib.pyplot as plt",
		`plt.plot([0,1,2,],[0,1,4,],"""+""")`,
		"plt.show()",
	}
	if got := slices.Collect(p.Lines()); !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestAxes_Calls(t *testing.T) {
	t.Parallel()

	y := py.MustFrom([]int{1, 2})
	x := py.MustFrom([]int{8, 9})

	tests := []struct {
		name string
		emit func(Axes)
		want string
	}{
		{
			name: "plot y",
			emit: func(a Axes) { a.Plot(y) },
			want: "plt.plot([1,2,])",
		},
		{
			name: "plot xy",
			emit: func(a Axes) { a.PlotXY(x, y) },
			want: "plt.plot([8,9,],[1,2,])",
		},
		{
			name: "semilogy y",
			emit: func(a Axes) { a.Semilogy(y) },
			want: "plt.semilogy([1,2,])",
		},
		{
			name: "semilogy xy style",
			emit: func(a Axes) { a.SemilogyXYStyle(x, y, "r--") },
			want: `plt.semilogy([8,9,],[1,2,],"""r--""")`,
		},
		{
			name: "title",
			emit: func(a Axes) { a.Title("squares") },
			want: `plt.title("""squares""")`,
		},
		{
			name: "show",
			emit: func(a Axes) { a.Show() },
			want: "plt.show()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := py.New()
			tt.emit(On(p))

			if got := strings.TrimSuffix(p.String(), "\n"); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// Quick helpers run the generated script. Pointing the interpreter at true
// keeps the test hermetic; the script content is ignored by the child.
func TestQuick(t *testing.T) {
	t.Parallel()

	out, err := Quick(
		context.Background(),
		py.MustFrom([]int{0, 1, 2, 3, 2, 1, 0}),
		py.WithInterpreter("true"),
	)
	if err != nil {
		t.Fatalf("Quick: %v", err)
	}

	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}
}
