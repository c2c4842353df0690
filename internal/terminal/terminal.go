// Package terminal detects the width of the output surface.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Detector reports the display width of a file descriptor. The function
// fields exist so tests can stand in for a real terminal.
type Detector struct {
	IsTerminal func(fd int) bool
	GetSize    func(fd int) (width, height int, err error)
	Getenv     func(key string) string
}

// Default uses golang.org/x/term and the process environment.
var Default = Detector{
	IsTerminal: term.IsTerminal,
	GetSize:    term.GetSize,
	Getenv:     os.Getenv,
}

// Width returns the column count of fd and whether it is known. A descriptor
// that is not a terminal (a pipe or a file) has no width. When the terminal
// size cannot be read, $COLUMNS is used if it holds a positive number.
func (d Detector) Width(fd int) (int, bool) {
	if d.IsTerminal == nil || !d.IsTerminal(fd) {
		return 0, false
	}
	if d.GetSize != nil {
		if w, _, err := d.GetSize(fd); err == nil && w > 0 {
			return w, true
		}
	}
	if d.Getenv != nil {
		if w, err := strconv.Atoi(d.Getenv("COLUMNS")); err == nil && w > 0 {
			return w, true
		}
	}
	return 0, false
}

// IsTTY reports whether fd is attached to a terminal.
func (d Detector) IsTTY(fd int) bool {
	return d.IsTerminal != nil && d.IsTerminal(fd)
}
