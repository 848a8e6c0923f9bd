// Package exec hands the launcher process over to the chosen interpreter.
package exec

import (
	"os"
)

// Executor replaces the current process with an interpreter.
type Executor interface {
	// Exec replaces the current process with the interpreter at path,
	// passing args through verbatim. The path comes from the resolution
	// pipeline and is used as-is; no PATH lookup happens here. On Unix
	// this uses syscall.Exec and does not return on success. On Windows it
	// returns an error.
	Exec(path string, args []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}
