package py

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/ardnew/mung"

	"github.com/ardnew/pyscribe/pkg"
)

// Output holds the result of one interpreter run. A non-zero ExitCode is
// data, not an error: the script ran, it just failed in Python. Launch
// failures (missing interpreter, unwritable temp dir) are errors instead.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Run materializes the accumulated text to a temp file, invokes the
// configured interpreter with that path as its sole argument, and blocks
// until the child exits. The temp file is removed before returning.
func (p *Program) Run(ctx context.Context) (Output, error) {
	path, cleanup, err := p.materialize()
	if err != nil {
		return Output{}, err
	}
	defer cleanup()

	return p.exec(ctx, path)
}

// materialize writes the buffer to a fresh temp file and returns its path
// along with a removal func.
func (p *Program) materialize() (string, func(), error) {
	file, err := os.CreateTemp("", pkg.Name+"-*.py")
	if err != nil {
		return "", nil, fmt.Errorf("create temp script: %w", err)
	}

	path := file.Name()
	cleanup := func() { _ = os.Remove(path) }

	_, err = file.Write(p.buf.Bytes())
	if err == nil {
		err = file.Close()
	} else {
		_ = file.Close()
	}

	if err != nil {
		cleanup()

		return "", nil, fmt.Errorf("write temp script: %w", err)
	}

	return path, cleanup, nil
}

func (p *Program) exec(ctx context.Context, path string) (Output, error) {
	cmd := exec.CommandContext(ctx, p.config.interpreter, path)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = p.environ()

	err := cmd.Run()

	out := Output{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	var exitErr *exec.ExitError

	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		out.ExitCode = exitErr.ExitCode()
	default:
		return out, fmt.Errorf("launch %s: %w", p.config.interpreter, err)
	}

	return out, nil
}

// environ builds the child environment. The parent environment is inherited
// untouched unless options added entries or PYTHONPATH directories.
func (p *Program) environ() []string {
	if len(p.config.pythonPath) == 0 && len(p.config.env) == 0 {
		return nil
	}

	env := append(os.Environ(), p.config.env...)

	if len(p.config.pythonPath) > 0 {
		env = append(env, "PYTHONPATH="+prefixSearchPath(
			os.Getenv("PYTHONPATH"), p.config.pythonPath...,
		))
	}

	return env
}

// prefixSearchPath prepends directories to a PATH-like string, deferring
// delimiter handling and deduplication to mung.
func prefixSearchPath(subject string, prefix ...string) string {
	return mung.Make(
		mung.WithSubjectItems(subject),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String()
}

// Handle is the join guard for a background run. It must be discharged
// exactly once, by [Handle.Join] or [Handle.Detach]; a second discharge is
// a programmer error and panics. Deferring [Handle.Close] discharges it by
// joining if nothing else has, so a Handle that merely falls out of scope
// still waits for its child instead of orphaning it.
//
// A Handle has a single owner and is not internally synchronized.
type Handle struct {
	result    chan runResult
	discarded bool
}

type runResult struct {
	out Output
	err error
}

// BackgroundRun consumes the Program and runs it on a new goroutine,
// returning immediately. Ownership of the Program and its eventual temp
// file moves into that goroutine; the caller must not touch the Program
// afterwards.
func (p *Program) BackgroundRun(ctx context.Context) *Handle {
	h := &Handle{result: make(chan runResult, 1)}

	go func() {
		out, err := p.Run(ctx)
		h.result <- runResult{out: out, err: err}
	}()

	return h
}

// Join blocks until the child exits and returns its result.
// Join panics if the handle was already joined or detached.
func (h *Handle) Join() (Output, error) {
	if h.discarded {
		panic("py: Handle already joined or detached")
	}

	h.discarded = true
	r := <-h.result

	return r.out, r.err
}

// Detach releases the completion guarantee without waiting. The child runs
// to completion on its own; no further join is possible. Detach panics if
// the handle was already joined or detached.
func (h *Handle) Detach() {
	if h.discarded {
		panic("py: Handle already joined or detached")
	}

	h.discarded = true
}

// Close joins the child unless the handle was already discharged, in which
// case it is a no-op. It implements io.Closer so a background run can be
// scoped with defer. The child's exit status is not inspected; only a
// launch failure is returned.
func (h *Handle) Close() error {
	if h.discarded {
		return nil
	}

	_, err := h.Join()

	return err
}
