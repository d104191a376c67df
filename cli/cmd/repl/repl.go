// Package repl implements the interactive script builder.
//
// Plain input lines append to the program at its current indentation depth.
// Colon directives drive the builder's structured operations and lifecycle:
// block headers adjust the depth, :run executes the accumulated script, and
// :save persists it. The buffer is append-only, so there is no editing of
// emitted lines, only appending more.
package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/pyscribe/log"
	"github.com/ardnew/pyscribe/py"
)

const transcriptDepth = 24

// Styles.
//
//nolint:gochecknoglobals
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	contStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	echoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

func helpMessage() []string {
	return strings.Split(strings.TrimSpace(`
: Directives (plain lines append to the script):

  :help           Print this cruft
  :list           Show the accumulated script
  :run            Execute the script
  :save PATH      Save the script to PATH
  :import M [A]   Import module M, optionally as alias A
  :if COND        Open an if block (:elif, :else continue it)
  :for RANGE      Open a for block
  :while COND     Open a while block
  :end            Close the innermost block
  :quit           Exit (Ctrl+C and Ctrl+D work too)

  Tab cycles through completion candidates.
`), "\n")
}

// runDoneMsg is sent when a :run finishes.
type runDoneMsg struct {
	err error
	out py.Output
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctx        context.Context
	program    *py.Program
	completer  *Completer
	logger     log.Logger
	input      textinput.Model
	transcript []string
	matches    fuzzy.Matches
	suggIdx    int
	running    bool
	quitting   bool
	err        error
}

// Run starts the interactive builder with the given interpreter.
func Run(ctx context.Context, interpreter string, logger log.Logger) error {
	logger.TraceContext(ctx, "repl start",
		slog.String("interpreter", interpreter),
	)

	input := textinput.New()
	input.Prompt = ""
	input.Focus()

	m := model{
		ctx:        ctx,
		program:    py.New(py.WithInterpreter(interpreter)),
		completer:  NewCompleter(),
		logger:     logger,
		input:      input,
		transcript: helpMessage(),
	}

	final, err := tea.NewProgram(&m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(*model); ok {
		return fm.err
	}

	return nil
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runDoneMsg:
		m.running = false
		m.echoRunResult(msg)

		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.quitting = true

			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyTab:
			m.cycle()

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.matches = m.completer.Match(m.input.Value())
	m.suggIdx = 0

	return m, cmd
}

func (m *model) View() string {
	var sb strings.Builder

	start := max(0, len(m.transcript)-transcriptDepth)
	for _, line := range m.transcript[start:] {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if m.quitting {
		return sb.String()
	}

	sb.WriteString(m.prompt())
	sb.WriteString(m.input.View())
	sb.WriteByte('\n')

	if m.running {
		sb.WriteString(hintStyle.Render("running..."))
		sb.WriteByte('\n')
	} else if len(m.matches) > 0 {
		sb.WriteString(suggestionStyle.Render(
			m.matches[m.suggIdx].Str,
		))
		sb.WriteString(hintStyle.Render(
			fmt.Sprintf("  (%d/%d, Tab to cycle)",
				m.suggIdx+1, len(m.matches)),
		))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// prompt renders the depth-aware input prompt: the familiar chevrons at
// top level, a continuation marker inside blocks.
func (m *model) prompt() string {
	if depth := m.program.Depth(); depth > 0 {
		return contStyle.Render("..."+strings.Repeat("\t", depth)) + " "
	}

	return promptStyle.Render(">>>") + " "
}

// cycle advances the completion selection, writing the candidate into the
// input when only one remains.
func (m *model) cycle() {
	if len(m.matches) == 0 {
		return
	}

	m.input.SetValue(m.matches[m.suggIdx].Str)
	m.input.CursorEnd()
	m.suggIdx = (m.suggIdx + 1) % len(m.matches)
}

// submit handles a completed input line.
func (m *model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.matches = nil

	if m.running {
		m.echo(hintStyle.Render("busy; wait for :run to finish"))

		return m, nil
	}

	if strings.HasPrefix(line, ":") {
		return m.directive(line)
	}

	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.echo(m.prompt() + echoStyle.Render(line))
	m.program.WriteLine(line)

	return m, nil
}

// directive dispatches a colon command.
func (m *model) directive(line string) (tea.Model, tea.Cmd) {
	m.echo(m.prompt() + echoStyle.Render(line))

	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return m, nil
	}

	name, rest := fields[0], strings.TrimSpace(
		strings.TrimPrefix(strings.TrimPrefix(line, ":"), fields[0]),
	)

	switch name {
	case "help":
		m.transcript = append(m.transcript, helpMessage()...)

	case "list":
		for l := range m.program.Lines() {
			m.echo(echoStyle.Render(l))
		}

	case "run":
		m.running = true

		return m, m.runScript()

	case "save":
		if rest == "" {
			m.echo(errorStyle.Render("usage: :save PATH"))

			break
		}

		if err := m.program.SaveAs(rest); err != nil {
			m.echo(errorStyle.Render(err.Error()))
		} else {
			m.echo(resultStyle.Render("saved " + rest))
		}

	case "import":
		switch len(fields) {
		case 2:
			m.program.Import(fields[1])
		case 3:
			m.program.ImportAs(fields[1], fields[2])
		default:
			m.echo(errorStyle.Render("usage: :import MODULE [ALIAS]"))
		}

	case "if", "elif", "for", "while":
		if rest == "" {
			m.echo(errorStyle.Render("usage: :" + name + " TEXT"))

			break
		}

		switch name {
		case "if":
			m.program.If(rest)
		case "elif":
			m.program.Elif(rest)
		case "for":
			m.program.For(rest)
		case "while":
			m.program.While(rest)
		}

	case "else":
		m.program.Else()

	case "end":
		m.program.EndBlock()

	case "quit":
		m.quitting = true

		return m, tea.Quit

	default:
		m.echo(errorStyle.Render("unknown directive :" + name))
	}

	return m, nil
}

// runScript executes the accumulated program off the update loop.
func (m *model) runScript() tea.Cmd {
	program := m.program
	ctx := m.ctx

	return func() tea.Msg {
		out, err := program.Run(ctx)

		return runDoneMsg{out: out, err: err}
	}
}

func (m *model) echo(line string) {
	m.transcript = append(m.transcript, line)
}

func (m *model) echoRunResult(msg runDoneMsg) {
	if msg.err != nil {
		m.logger.ErrorContext(m.ctx, "run failed",
			slog.Any("error", msg.err),
		)
		m.echo(errorStyle.Render(msg.err.Error()))

		return
	}

	for line := range strings.Lines(string(msg.out.Stdout)) {
		m.echo(resultStyle.Render(strings.TrimSuffix(line, "\n")))
	}

	for line := range strings.Lines(string(msg.out.Stderr)) {
		m.echo(errorStyle.Render(strings.TrimSuffix(line, "\n")))
	}

	if msg.out.ExitCode != 0 {
		m.echo(errorStyle.Render(
			fmt.Sprintf("exit status %d", msg.out.ExitCode),
		))
	}
}
