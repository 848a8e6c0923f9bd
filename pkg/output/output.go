// Package output renders launcher messages to the terminal.
package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"
)

var (
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		red, reset = "", ""
	}
}

// PrintError writes a launcher error to w with a colored prefix when the
// terminal supports it.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%serror:%s %v\n", red, reset, err)
}
