// Package py builds Python source text a line at a time and runs it.
//
// The package has two halves. [Value] is a tagged union over the closed set
// of types that can be rendered as Python literals (integers, floats,
// strings, lists, dicts), with [From] converting native Go values at the
// boundary. [Program] is an append-only line buffer with an indentation
// cursor and structured append operations for assignments, imports, and
// block headers.
//
// A Program accumulates entirely in memory. It touches the filesystem only
// when asked to: [Program.SaveAs] persists the accumulated text, and
// [Program.Run] materializes it to a temp file and hands that path to the
// Python interpreter.
//
// # Basic Usage
//
//	p := py.New()
//	p.ImportAs("matplotlib.pyplot", "plt").
//		DefineVariable("y", py.List(py.Int(1), py.Int(4), py.Int(9))).
//		WriteLine("plt.plot(y)").
//		WriteLine("plt.show()")
//
//	out, err := p.Run(ctx)
//
// # Indentation
//
// Block openers ([Program.If], [Program.For], [Program.While]) write their
// header and descend one level. [Program.Elif] and [Program.Else] always
// emit at the level of the if they continue. Callers balance openers with
// [Program.EndBlock] themselves; nothing is validated, and the generated
// text is never parsed back.
//
// # Background execution
//
// [Program.BackgroundRun] consumes the Program and returns a [Handle] that
// must be discharged exactly once, by [Handle.Join] or [Handle.Detach].
// Deferring [Handle.Close] restores the guarantee that no child process is
// silently orphaned.
package py
