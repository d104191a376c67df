package cmd

import (
	"context"

	"github.com/ardnew/pyscribe/cli/cmd/repl"
	"github.com/ardnew/pyscribe/log"
)

// Repl interactively builds and runs a script.
type Repl struct {
	Interpreter string `default:"python3" help:"Interpreter binary" short:"I"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return repl.Run(ctx, r.Interpreter, log.Default())
}
