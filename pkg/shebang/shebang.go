// Package shebang extracts an interpreter version request from the first
// line of a script file.
package shebang

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/pylaunch/pylaunch/pkg/version"
)

// Interpreter invocation forms recognized in a shebang line, checked in
// order; the first prefix match wins.
var acceptedCommands = []string{
	"python",
	"/usr/bin/python",
	"/usr/local/bin/python",
	"/usr/bin/env python",
}

// Parse reads the start of a candidate script and returns the version
// request implied by its shebang line. The second return is false whenever
// the content is not a recognizable Python shebang: missing "#!" marker,
// read failure, invalid UTF-8, a non-Python interpreter, or a malformed
// version suffix. None of these are errors; the caller falls back to an
// unconstrained request.
func Parse(r io.Reader) (version.Requested, bool) {
	var marker [2]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil || marker != [2]byte{'#', '!'} {
		log.Debug("no #! at the start of the file")
		return version.Requested{}, false
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		log.Debug("cannot read the first line of the file")
		return version.Requested{}, false
	}
	if !utf8.ValidString(line) {
		log.Debug("first line of the file is not valid UTF-8")
		return version.Requested{}, false
	}

	// Whitespace between `#!` and the command is allowed.
	line = strings.TrimSpace(line)

	for _, command := range acceptedCommands {
		if !strings.HasPrefix(line, command) {
			continue
		}
		log.Debug("found a Python shebang", "command", command)
		suffix := line[len(command):]
		if suffix == "" {
			return version.Any(), true
		}
		requested, err := version.Parse(suffix)
		if err != nil {
			log.Debug("unparsable version suffix in shebang", "suffix", suffix)
			return version.Requested{}, false
		}
		return requested, true
	}

	return version.Requested{}, false
}
