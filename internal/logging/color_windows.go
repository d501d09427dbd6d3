//go:build windows

package logging

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

func enableColor(stream *os.File) bool {
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(stream.Fd()), &mode); err != nil {
		return false
	}
	const enableVirtualTerminalProcessing uint32 = 0x4
	mode |= enableVirtualTerminalProcessing
	return windows.SetConsoleMode(windows.Handle(stream.Fd()), mode) == nil
}
