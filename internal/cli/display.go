package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 60

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// display is the output side of the shell. A quiet display drops everything.
type display struct {
	out   io.Writer
	quiet bool
}

func newDisplay(out io.Writer, quiet bool) *display {
	return &display{out: out, quiet: quiet}
}

func (d *display) Banner() {
	if d.quiet {
		return
	}
	fmt.Fprintln(d.out, bannerStyle.Render("Hello! I'm tasker."))
	fmt.Fprintln(d.out, "What can I do for you?")
}

// Show prints msg between two rules, indented by one space.
func (d *display) Show(msg string) {
	if d.quiet {
		return
	}
	rule := ruleStyle.Render(strings.Repeat("─", ruleWidth))
	fmt.Fprintln(d.out, rule)
	for _, line := range strings.Split(msg, "\n") {
		fmt.Fprintln(d.out, " "+line)
	}
	fmt.Fprintln(d.out, rule)
}

// Print writes msg as is.
func (d *display) Print(msg string) {
	if d.quiet {
		return
	}
	fmt.Fprintln(d.out, msg)
}
