package py

import (
	"bytes"
	"fmt"
	"iter"
	"os"
	"strings"
)

// DefaultIndentUnit is the whitespace emitted per nesting level.
const DefaultIndentUnit = "\t"

// DefaultInterpreter is the interpreter binary located on PATH when no
// override is configured.
const DefaultInterpreter = "python3"

// config holds the configuration options for a Program.
type config struct {
	indentUnit  string
	interpreter string
	pythonPath  []string
	env         []string
}

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithDefaults returns a functional option that sets the default
// configuration: [DefaultIndentUnit], [DefaultInterpreter], and the parent
// process environment unchanged.
func WithDefaults() Option {
	return func(c config) config {
		c.indentUnit = DefaultIndentUnit
		c.interpreter = DefaultInterpreter
		c.pythonPath = nil
		c.env = nil

		return c
	}
}

// WithIndentUnit returns a functional option that sets the whitespace
// emitted per nesting level.
func WithIndentUnit(unit string) Option {
	return func(c config) config {
		c.indentUnit = unit

		return c
	}
}

// WithInterpreter returns a functional option that sets the interpreter
// binary used by [Program.Run]. The name is resolved on PATH unless it
// contains a path separator.
func WithInterpreter(name string) Option {
	return func(c config) config {
		if name != "" {
			c.interpreter = name
		}

		return c
	}
}

// WithPythonPath returns a functional option that prepends directories to
// the PYTHONPATH seen by the interpreter.
func WithPythonPath(dirs ...string) Option {
	return func(c config) config {
		c.pythonPath = append(c.pythonPath, dirs...)

		return c
	}
}

// WithEnv returns a functional option that appends "KEY=VALUE" entries to
// the interpreter's environment.
func WithEnv(keyval ...string) Option {
	return func(c config) config {
		c.env = append(c.env, keyval...)

		return c
	}
}

// Program accumulates Python source text line by line.
//
// The zero Program is not usable; construct with [New]. A Program is owned
// by a single goroutine and is not internally synchronized. Lines are only
// ever appended, never edited or removed.
type Program struct {
	buf    bytes.Buffer
	config config
	depth  int
}

// New creates an empty Program with the given options applied over the
// defaults.
func New(opts ...Option) *Program {
	return &Program{config: apply(apply(config{}, WithDefaults()), opts...)}
}

// prefix returns the indentation run for the current depth.
// A negative cursor renders as zero columns; the counter itself is left
// untouched so unbalanced callers can still observe it via [Program.Depth].
func (p *Program) prefix() string {
	if p.depth <= 0 {
		return ""
	}

	return strings.Repeat(p.config.indentUnit, p.depth)
}

// WriteLine appends line at the current indentation, followed by a newline.
func (p *Program) WriteLine(line string) *Program {
	p.buf.WriteString(p.prefix())
	p.buf.WriteString(line)
	p.buf.WriteByte('\n')

	return p
}

// DefineVariable appends an assignment of value, rendered as a Python
// literal, to name. The name is written through verbatim; callers own its
// validity as a Python identifier.
func (p *Program) DefineVariable(name string, value Value) *Program {
	p.buf.WriteString(p.prefix())
	p.buf.WriteString(name)
	p.buf.WriteString(" = ")

	// bytes.Buffer never returns a write error.
	_ = value.Format(&p.buf)

	p.buf.WriteByte('\n')

	return p
}

// Import appends an import statement for module.
func (p *Program) Import(module string) *Program {
	return p.WriteLine("import " + module)
}

// ImportAs appends an aliased import statement for module.
func (p *Program) ImportAs(module, alias string) *Program {
	return p.WriteLine("import " + module + " as " + alias)
}

// If appends an if header built from the verbatim condition text and
// descends one level.
func (p *Program) If(condition string) *Program {
	p.WriteLine("if " + condition + ":")

	return p.Indent(1)
}

// Elif ascends one level, appends an elif header, and descends again, so
// the header lands at the level of the if it continues. Calling it with the
// cursor already at the outermost level leaves the counter negative rather
// than correcting it.
func (p *Program) Elif(condition string) *Program {
	p.Indent(-1)
	p.WriteLine("elif " + condition + ":")

	return p.Indent(1)
}

// Else ascends one level, appends an else header, and descends again.
// The same outermost-level caveat as [Program.Elif] applies.
func (p *Program) Else() *Program {
	p.Indent(-1)
	p.WriteLine("else:")

	return p.Indent(1)
}

// For appends a for header built from the verbatim range text and descends
// one level.
func (p *Program) For(rangeExpr string) *Program {
	p.WriteLine("for " + rangeExpr + ":")

	return p.Indent(1)
}

// While appends a while header built from the verbatim condition text and
// descends one level.
func (p *Program) While(condition string) *Program {
	p.WriteLine("while " + condition + ":")

	return p.Indent(1)
}

// EndBlock ascends one level. Callers balance block openers and EndBlock
// themselves; no lower bound is enforced.
func (p *Program) EndBlock() *Program {
	return p.Indent(-1)
}

// Indent moves the indentation cursor by n levels in either direction.
// Prefer the structured block operations when possible.
func (p *Program) Indent(n int) *Program {
	p.depth += n

	return p
}

// Depth returns the current indentation level.
func (p *Program) Depth() int {
	return p.depth
}

// Len returns the number of bytes accumulated so far.
func (p *Program) Len() int {
	return p.buf.Len()
}

// String returns the full accumulated source text.
func (p *Program) String() string {
	return p.buf.String()
}

// Lines returns an iterator over the accumulated lines in append order,
// without their terminating newlines.
func (p *Program) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(p.buf.String()) {
			if !yield(strings.TrimSuffix(line, "\n")) {
				return
			}
		}
	}
}

// SaveAs writes the accumulated text byte-for-byte to path.
// The Program remains usable afterwards.
func (p *Program) SaveAs(path string) error {
	err := os.WriteFile(path, p.buf.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("save script: %w", err)
	}

	return nil
}
