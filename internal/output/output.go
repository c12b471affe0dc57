// Package output formats CLI output.
package output

import (
	"fmt"
	"io"
	"os"
)

// Stderr is where Error and Warning write. Tests may replace it.
var Stderr io.Writer = os.Stderr

// Error prints an error message to stderr.
func Error(format string, args ...any) {
	fmt.Fprintf(Stderr, "Error: "+format+"\n", args...)
}

// Warning prints a warning to stderr.
func Warning(format string, args ...any) {
	fmt.Fprintf(Stderr, "Warning: "+format+"\n", args...)
}

// KeyValues prints aligned "key: value" lines.
func KeyValues(w io.Writer, pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}
	for _, p := range pairs {
		fmt.Fprintf(w, "%-*s  %s\n", width+1, p[0]+":", p[1])
	}
}
