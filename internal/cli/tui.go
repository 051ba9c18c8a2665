package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/horta/internal/errors"
	"github.com/julianstephens/horta/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if !isTerminal(os.Stdout) {
		return errors.Usagef("the TUI needs a terminal; try 'horta garden' instead")
	}

	p := tea.NewProgram(tui.NewModel(ctx.Session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
