package launcher

import (
	"fmt"

	"github.com/pylaunch/pylaunch/pkg/version"
)

// IllegalArgumentError reports a reserved flag combined with extra
// arguments.
type IllegalArgumentError struct {
	Flag string
}

func (e *IllegalArgumentError) Error() string {
	return fmt.Sprintf("the %s flag must be specified on its own", e.Flag)
}

// NoExecutableFoundError reports that no installed interpreter satisfied
// the request.
type NoExecutableFoundError struct {
	Requested version.Requested
}

func (e *NoExecutableFoundError) Error() string {
	return fmt.Sprintf("no executable found for %s", e.Requested)
}

// BadVersionFormatError reports a malformed version string from explicit
// user input: a version flag or a PY_PYTHON* override. Malformed shebangs
// and venv paths never produce this; they degrade silently.
type BadVersionFormatError struct {
	Source string
	Input  string
	Err    error
}

func (e *BadVersionFormatError) Error() string {
	return fmt.Sprintf("bad version format in %s: %q: %v", e.Source, e.Input, e.Err)
}

func (e *BadVersionFormatError) Unwrap() error {
	return e.Err
}
