package repl

import (
	"os"

	"github.com/peterh/liner"
)

// Terminal is a line editor whose history lives in a file.
type Terminal struct {
	*liner.State
	historyFile string
}

// OpenTerminal puts the terminal into line-editing mode and loads the
// history from historyFile if it exists. An empty historyFile disables
// persistence.
func OpenTerminal(historyFile string) *Terminal {
	t := &Terminal{State: liner.NewLiner(), historyFile: historyFile}
	t.SetCtrlCAborts(true)
	if historyFile == "" {
		return t
	}
	if f, err := os.Open(historyFile); err == nil {
		_, _ = t.ReadHistory(f)
		_ = f.Close()
	}
	return t
}

// Close writes the history back and restores the terminal.
func (t *Terminal) Close() error {
	if t.historyFile != "" {
		if f, err := os.Create(t.historyFile); err == nil {
			_, _ = t.WriteHistory(f)
			_ = f.Close()
		}
	}
	return t.State.Close()
}
