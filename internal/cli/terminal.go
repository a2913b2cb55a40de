package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// isTerminal checks if the file is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorDisabled reports whether output to w should be plain: either the
// user asked for it or w is not a terminal.
func colorDisabled(w io.Writer, noColor bool) bool {
	if noColor {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !isTerminal(f)
}
