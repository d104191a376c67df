package py

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// The builder never validates target-language syntax, so these tests point
// the interpreter option at sh and generate shell instead of Python. The
// launch path is identical.

func TestProgram_Run(t *testing.T) {
	t.Parallel()

	p := New(WithInterpreter("sh"))
	p.WriteLine("echo hello from the script")
	p.WriteLine("echo oops >&2")

	out, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}

	if got := strings.TrimSpace(string(out.Stdout)); got != "hello from the script" {
		t.Errorf("Stdout = %q", got)
	}

	if got := strings.TrimSpace(string(out.Stderr)); got != "oops" {
		t.Errorf("Stderr = %q", got)
	}
}

func TestProgram_RunNonZeroExit(t *testing.T) {
	t.Parallel()

	p := New(WithInterpreter("sh"))
	p.WriteLine("exit 3")

	out, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: non-zero exit must not be an error, got %v", err)
	}

	if out.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", out.ExitCode)
	}
}

func TestProgram_RunMissingInterpreter(t *testing.T) {
	t.Parallel()

	p := New(WithInterpreter("pyscribe-no-such-interpreter"))
	p.WriteLine("pass")

	_, err := p.Run(context.Background())
	if err == nil {
		t.Error("Run with missing interpreter succeeded")
	}
}

func TestProgram_RunEnv(t *testing.T) {
	t.Parallel()

	p := New(
		WithInterpreter("sh"),
		WithEnv("PYSCRIBE_TEST_GREETING=salut"),
	)
	p.WriteLine(`echo "$PYSCRIBE_TEST_GREETING"`)

	out, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := strings.TrimSpace(string(out.Stdout)); got != "salut" {
		t.Errorf("Stdout = %q, want %q", got, "salut")
	}
}

func TestProgram_RunPythonPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	p := New(
		WithInterpreter("sh"),
		WithPythonPath(dir),
	)
	p.WriteLine(`echo "$PYTHONPATH"`)

	out, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := strings.TrimSpace(string(out.Stdout)); !strings.HasPrefix(got, dir) {
		t.Errorf("PYTHONPATH = %q, want prefix %q", got, dir)
	}
}

func TestHandle_Join(t *testing.T) {
	t.Parallel()

	p := New(WithInterpreter("sh"))
	p.WriteLine("echo joined")

	h := p.BackgroundRun(context.Background())

	out, err := h.Join()
	if err != nil {
		t.Fatalf("Join: %v", err)
	}

	if got := strings.TrimSpace(string(out.Stdout)); got != "joined" {
		t.Errorf("Stdout = %q", got)
	}
}

// Close on an undischarged handle must block until the child exits.
func TestHandle_CloseWaits(t *testing.T) {
	t.Parallel()

	const naptime = 300 * time.Millisecond

	p := New(WithInterpreter("sh"))
	p.WriteLine("sleep 0.3")

	start := time.Now()
	h := p.BackgroundRun(context.Background())

	err := h.Close()
	if err != nil {
		t.Fatalf("Close: %v", err)
	}

	if elapsed := time.Since(start); elapsed < naptime {
		t.Errorf("Close returned after %v, want at least %v", elapsed, naptime)
	}
}

func TestHandle_CloseAfterJoin(t *testing.T) {
	t.Parallel()

	p := New(WithInterpreter("sh"))
	p.WriteLine("true")

	h := p.BackgroundRun(context.Background())

	if _, err := h.Join(); err != nil {
		t.Fatalf("Join: %v", err)
	}

	// Already discharged: Close is a no-op, not a panic.
	if err := h.Close(); err != nil {
		t.Errorf("Close after Join: %v", err)
	}
}

func TestHandle_DoubleJoinPanics(t *testing.T) {
	t.Parallel()

	p := New(WithInterpreter("sh"))
	p.WriteLine("true")

	h := p.BackgroundRun(context.Background())
	h.Detach()

	defer func() {
		if recover() == nil {
			t.Error("Join after Detach did not panic")
		}
	}()

	_, _ = h.Join()
}

func TestProgram_RunPython(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath(DefaultInterpreter); err != nil {
		t.Skipf("%s not on PATH", DefaultInterpreter)
	}

	p := New()
	p.DefineVariable("xs", MustFrom([]int{1, 2, 3})).
		WriteLine("print(sum(xs))")

	out, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if out.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, stderr: %s", out.ExitCode, out.Stderr)
	}

	if got := strings.TrimSpace(string(out.Stdout)); got != "6" {
		t.Errorf("Stdout = %q, want %q", got, "6")
	}
}
