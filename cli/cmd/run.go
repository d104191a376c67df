package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/pyscribe/log"
	"github.com/ardnew/pyscribe/py"
)

// Run feeds Python source through the builder and executes the result.
type Run struct {
	Script      string `arg:"" default:"-" help:"Python source file or '-' for stdin" optional:""`
	Save        string `help:"Also save the generated script to PATH" short:"o" type:"path"`
	Background  bool   `help:"Launch in the background and join before exit"`
	Interpreter string `default:"python3" help:"Interpreter binary" short:"I"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	source, err := openSource(r.Script)
	if err != nil {
		return err
	}
	defer source.Close()

	program, err := assemble(source, py.WithInterpreter(r.Interpreter))
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "script assembled",
		slog.String("source", r.Script),
		slog.Int("bytes", program.Len()),
	)

	if r.Save != "" {
		err = program.SaveAs(r.Save)
		if err != nil {
			return ErrSaveScript.Wrap(err).
				With(slog.String("path", r.Save))
		}

		log.InfoContext(ctx, "script saved", slog.String("path", r.Save))
	}

	var out py.Output

	if r.Background {
		handle := program.BackgroundRun(ctx)
		defer handle.Close()

		log.DebugContext(ctx, "running in background",
			slog.String("interpreter", r.Interpreter),
		)

		out, err = handle.Join()
	} else {
		out, err = program.Run(ctx)
	}

	if err != nil {
		return ErrRunScript.Wrap(err).
			With(slog.String("interpreter", r.Interpreter))
	}

	return report(ctx, out)
}

// report relays the child's captured output and translates a non-zero exit
// status into a command error.
func report(ctx context.Context, out py.Output) error {
	_, _ = os.Stdout.Write(out.Stdout)
	_, _ = os.Stderr.Write(out.Stderr)

	if out.ExitCode != 0 {
		return ErrScriptExit.
			With(slog.Int("exit_code", out.ExitCode))
	}

	log.DebugContext(ctx, "script complete",
		slog.Int("stdout_bytes", len(out.Stdout)),
		slog.Int("stderr_bytes", len(out.Stderr)),
	)

	return nil
}
