//go:build windows

package exec

import "errors"

// ErrExecNotSupported indicates process replacement is not available on
// Windows, which has no true exec syscall.
var ErrExecNotSupported = errors.New("process replacement not supported on Windows")

// Exec is not supported on Windows.
func (e *RealExecutor) Exec(path string, args []string) error {
	return ErrExecNotSupported
}
