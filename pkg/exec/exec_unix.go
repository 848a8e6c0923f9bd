//go:build unix

package exec

import (
	"syscall"
)

// execFunc is swapped out in tests; syscall.Exec never returns on success.
var execFunc = syscall.Exec

// Exec replaces the current process with the interpreter at path.
// argv[0] is the interpreter path by convention.
func (e *RealExecutor) Exec(path string, args []string) error {
	argv := append([]string{path}, args...)
	// #nosec G204 -- launching the resolved interpreter with the user's
	// arguments is the whole point of the program.
	return execFunc(path, argv, environ())
}
