//go:build !windows

package logging

import (
	"os"

	"golang.org/x/term"
)

func enableColor(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
