package repl

import (
	"slices"
	"testing"
)

func TestCompleter_Directives(t *testing.T) {
	t.Parallel()

	c := NewCompleter()

	got := c.Candidates(":ru")
	if !slices.Contains(got, ":run") {
		t.Errorf("Candidates(%q) = %q, want to contain %q", ":ru", got, ":run")
	}

	// Directive input never matches snippets.
	for _, cand := range c.Candidates(":pl") {
		if cand[0] != ':' {
			t.Errorf("directive input matched snippet %q", cand)
		}
	}
}

func TestCompleter_Snippets(t *testing.T) {
	t.Parallel()

	c := NewCompleter()

	got := c.Candidates("plt.sh")
	if !slices.Contains(got, "plt.show()") {
		t.Errorf("Candidates(%q) = %q, want to contain %q", "plt.sh", got, "plt.show()")
	}
}

func TestCompleter_Empty(t *testing.T) {
	t.Parallel()

	c := NewCompleter()

	if got := c.Candidates(""); len(got) != 0 {
		t.Errorf("Candidates(\"\") = %q, want none", got)
	}
}

func TestCompleter_RankOrder(t *testing.T) {
	t.Parallel()

	c := NewCompleter()

	got := c.Candidates(":e")
	if len(got) == 0 {
		t.Fatal("no candidates for :e")
	}

	// Exact-prefix directives must rank above scattered matches.
	if got[0] != ":end" && got[0] != ":elif" && got[0] != ":else" {
		t.Errorf("best candidate for :e is %q", got[0])
	}
}
