package repl

import (
	"github.com/sahilm/fuzzy"
)

// Completer fuzzy-matches partial input against a fixed candidate list:
// the colon directives plus a handful of common pyplot lines.
type Completer struct {
	directives []string
	snippets   []string
}

// NewCompleter creates a completer with the built-in candidates.
func NewCompleter() *Completer {
	return &Completer{
		directives: []string{
			":help",
			":list",
			":run",
			":save",
			":import",
			":if",
			":elif",
			":else",
			":for",
			":while",
			":end",
			":quit",
		},
		snippets: []string{
			"import matplotlib.pyplot as plt",
			"plt.plot()",
			"plt.semilogy()",
			"plt.title()",
			"plt.xlabel()",
			"plt.ylabel()",
			"plt.legend()",
			"plt.grid(True)",
			"plt.show()",
			"print()",
		},
	}
}

// Match returns fuzzy match results for the current input, best first.
// Directive input (leading colon) matches only directives; anything else
// matches only snippets. Empty input matches nothing.
func (c *Completer) Match(input string) fuzzy.Matches {
	if input == "" {
		return nil
	}

	if input[0] == ':' {
		return fuzzy.Find(input, c.directives)
	}

	return fuzzy.Find(input, c.snippets)
}

// Candidates returns the matched strings in rank order.
func (c *Completer) Candidates(input string) []string {
	matches := c.Match(input)

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}

	return out
}
