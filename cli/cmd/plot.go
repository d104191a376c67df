package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/expr-lang/expr"

	"github.com/ardnew/pyscribe/log"
	"github.com/ardnew/pyscribe/plot"
	"github.com/ardnew/pyscribe/py"
)

// Plot builds and runs a matplotlib script from data series.
//
// The ordinate comes either from a data file (YAML or JSON) or from an
// expression evaluated over a sample range with x bound at each sample.
type Plot struct {
	Data        string  `help:"YAML or JSON file with the y series ('-' for stdin)"     short:"d" xor:"series"`
	Expr        string  `help:"Expression for y, evaluated with x bound at each sample" short:"e" xor:"series"`
	X           string  `help:"YAML or JSON file with the x series"`
	From        float64 `default:"0"   help:"First sample for --expr"`
	To          float64 `default:"1"   help:"Last sample for --expr"`
	Samples     int     `default:"100" help:"Sample count for --expr"`
	Style       string  `help:"matplotlib format string, e.g. 'r--'" short:"s"`
	Semilogy    bool    `help:"Plot with a logarithmic y axis"`
	Title       string  `help:"Figure title"`
	Save        string  `help:"Also save the generated script to PATH" short:"o" type:"path"`
	DryRun      bool    `help:"Print the generated script instead of running it" short:"n"`
	Interpreter string  `default:"python3" help:"Interpreter binary" short:"I"`
}

// Run executes the plot command.
func (p *Plot) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	program, err := p.build()
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "plot script assembled",
		slog.Int("bytes", program.Len()),
	)

	if p.Save != "" {
		err = program.SaveAs(p.Save)
		if err != nil {
			return ErrSaveScript.Wrap(err).
				With(slog.String("path", p.Save))
		}

		log.InfoContext(ctx, "script saved", slog.String("path", p.Save))
	}

	if p.DryRun {
		fmt.Print(program.String())

		return nil
	}

	out, err := program.Run(ctx)
	if err != nil {
		return ErrRunScript.Wrap(err).
			With(slog.String("interpreter", p.Interpreter))
	}

	_, _ = os.Stderr.Write(out.Stderr)

	if out.ExitCode != 0 {
		return ErrScriptExit.
			With(slog.Int("exit_code", out.ExitCode))
	}

	return nil
}

// build assembles the matplotlib script from the configured sources.
func (p *Plot) build() (*py.Program, error) {
	x, y, err := p.series()
	if err != nil {
		return nil, err
	}

	axes := plot.On(py.New(py.WithInterpreter(p.Interpreter))).ImportPyplot()

	switch {
	case p.Semilogy && x != nil && p.Style != "":
		axes.SemilogyXYStyle(*x, y, p.Style)
	case p.Semilogy && x != nil:
		axes.SemilogyXY(*x, y)
	case p.Semilogy:
		axes.Semilogy(y)
	case x != nil && p.Style != "":
		axes.PlotXYStyle(*x, y, p.Style)
	case x != nil:
		axes.PlotXY(*x, y)
	default:
		axes.Plot(y)
	}

	if p.Title != "" {
		axes.Title(p.Title)
	}

	axes.Show()

	return axes.Program(), nil
}

// series resolves the abscissa (optional) and ordinate values.
func (p *Plot) series() (x *py.Value, y py.Value, err error) {
	switch {
	case p.Expr != "":
		return p.sample()

	case p.Data != "":
		y, err = decodeSeries(p.Data)
		if err != nil {
			return nil, py.Value{}, err
		}

		if p.X != "" {
			xv, err := decodeSeries(p.X)
			if err != nil {
				return nil, py.Value{}, err
			}

			x = &xv
		}

		return x, y, nil

	default:
		return nil, py.Value{}, ErrNoSeries
	}
}

// sample evaluates the expression over the configured range, yielding both
// series.
func (p *Plot) sample() (*py.Value, py.Value, error) {
	if p.Samples < 2 {
		return nil, py.Value{}, ErrEvalExpr.
			With(slog.Int("samples", p.Samples)).
			Wrap(fmt.Errorf("need at least 2 samples"))
	}

	env := map[string]any{"x": float64(0)}

	prog, err := expr.Compile(p.Expr, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return nil, py.Value{}, ErrCompileExpr.Wrap(err).
			With(slog.String("expr", p.Expr))
	}

	xs := make([]py.Value, p.Samples)
	ys := make([]py.Value, p.Samples)
	step := (p.To - p.From) / float64(p.Samples-1)

	for i := range xs {
		at := p.From + step*float64(i)

		out, err := expr.Run(prog, map[string]any{"x": at})
		if err != nil {
			return nil, py.Value{}, ErrEvalExpr.Wrap(err).
				With(
					slog.String("expr", p.Expr),
					slog.Float64("x", at),
				)
		}

		f, ok := out.(float64)
		if !ok {
			return nil, py.Value{}, ErrEvalExpr.
				With(slog.String("expr", p.Expr)).
				Wrap(fmt.Errorf("result is %T, not float64", out))
		}

		xs[i] = py.Float(at)
		ys[i] = py.Float(f)
	}

	x := py.List(xs...)

	return &x, py.List(ys...), nil
}
