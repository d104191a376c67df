// Package plot provides thin matplotlib conveniences over [py.Program].
//
// [Axes] wraps an existing Program with pyplot call emitters, and the Quick
// helpers build, run, and discard a one-shot figure in a single call.
// Everything here is call-site sugar; the generated calls are ordinary
// lines appended through the builder.
package plot

import (
	"context"
	"fmt"

	"github.com/ardnew/pyscribe/py"
)

// pyplotModule is imported, aliased to [pyplotAlias], by [Axes.ImportPyplot].
const (
	pyplotModule = "matplotlib.pyplot"
	pyplotAlias  = "plt"
)

// Axes emits pyplot calls into the Program it wraps.
// Methods chain, and the wrapped Program remains usable directly.
type Axes struct {
	prog *py.Program
}

// On wraps an existing Program.
func On(p *py.Program) Axes {
	return Axes{prog: p}
}

// Program returns the wrapped Program.
func (a Axes) Program() *py.Program {
	return a.prog
}

// ImportPyplot appends the pyplot import, aliased to plt.
func (a Axes) ImportPyplot() Axes {
	a.prog.ImportAs(pyplotModule, pyplotAlias)

	return a
}

// Plot appends a plt.plot call with a single ordinate series.
func (a Axes) Plot(y py.Value) Axes {
	return a.call("plot", y.Literal())
}

// PlotXY appends a plt.plot call with abscissa and ordinate series.
func (a Axes) PlotXY(x, y py.Value) Axes {
	return a.call("plot", x.Literal()+","+y.Literal())
}

// PlotXYStyle appends a plt.plot call with both series and a verbatim
// style format string, e.g. "+" or "r--".
func (a Axes) PlotXYStyle(x, y py.Value, style string) Axes {
	return a.call("plot", x.Literal()+","+y.Literal()+","+py.Str(style).Literal())
}

// Semilogy appends a plt.semilogy call with a single ordinate series.
func (a Axes) Semilogy(y py.Value) Axes {
	return a.call("semilogy", y.Literal())
}

// SemilogyXY appends a plt.semilogy call with abscissa and ordinate series.
func (a Axes) SemilogyXY(x, y py.Value) Axes {
	return a.call("semilogy", x.Literal()+","+y.Literal())
}

// SemilogyXYStyle appends a plt.semilogy call with both series and a
// verbatim style format string.
func (a Axes) SemilogyXYStyle(x, y py.Value, style string) Axes {
	return a.call("semilogy", x.Literal()+","+y.Literal()+","+py.Str(style).Literal())
}

// Title appends a plt.title call.
func (a Axes) Title(title string) Axes {
	return a.call("title", py.Str(title).Literal())
}

// Show appends the blocking plt.show call.
func (a Axes) Show() Axes {
	return a.call("show", "")
}

func (a Axes) call(fn, args string) Axes {
	a.prog.WriteLine(fmt.Sprintf("%s.%s(%s)", pyplotAlias, fn, args))

	return a
}

// Quick builds and runs a one-shot figure of a single ordinate series.
func Quick(ctx context.Context, y py.Value, opts ...py.Option) (py.Output, error) {
	return quick(ctx, opts, func(a Axes) { a.Plot(y) })
}

// QuickXY builds and runs a one-shot figure of abscissa and ordinate
// series.
func QuickXY(ctx context.Context, x, y py.Value, opts ...py.Option) (py.Output, error) {
	return quick(ctx, opts, func(a Axes) { a.PlotXY(x, y) })
}

// QuickXYStyle builds and runs a one-shot figure of both series with a
// style format string.
func QuickXYStyle(
	ctx context.Context,
	x, y py.Value,
	style string,
	opts ...py.Option,
) (py.Output, error) {
	return quick(ctx, opts, func(a Axes) { a.PlotXYStyle(x, y, style) })
}

func quick(
	ctx context.Context,
	opts []py.Option,
	draw func(Axes),
) (py.Output, error) {
	a := On(py.New(opts...)).ImportPyplot()
	draw(a)
	a.Show()

	return a.Program().Run(ctx)
}
