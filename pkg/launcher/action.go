// Package launcher turns command-line arguments into the action to
// perform: show help, list interpreters, or execute one.
package launcher

import (
	"github.com/charmbracelet/log"

	"github.com/pylaunch/pylaunch/pkg/finder"
	"github.com/pylaunch/pylaunch/pkg/version"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Action is the outcome of argument dispatch. Exactly one of the concrete
// types below is returned per invocation.
type Action interface {
	isAction()
}

// Help carries the launcher's help text and the interpreter the text was
// resolved against, so the caller can append the interpreter's own help.
type Help struct {
	Message    string
	Executable string
}

// List carries the formatted table of discovered interpreters.
type List struct {
	Output string
}

// VersionInfo carries the launcher's own version string.
type VersionInfo struct {
	Version string
}

// Execute carries everything needed to replace this process with an
// interpreter.
type Execute struct {
	LauncherPath string
	Executable   string
	Args         []string
}

func (Help) isAction()        {}
func (List) isAction()        {}
func (VersionInfo) isAction() {}
func (Execute) isAction()     {}

// FromArgs decides the action for a full argument vector. argv[0] is the
// path to the launcher itself; argv[1], when present, selects among the
// reserved flags, a version flag like -3 or -3.12, or the start of the
// arguments to pass through to the interpreter.
//
// The reserved flags (-h, --help, --list, --list-json, --version) must
// appear alone; trailing arguments are an IllegalArgumentError. A version
// flag skips the venv and shebang heuristics, since an explicit request
// must not be overridden by them.
func FromArgs(argv []string, find finder.Finder) (Action, error) {
	launcherPath := argv[0]

	if len(argv) < 2 {
		return executeAction(launcherPath, version.Any(), nil, find)
	}

	switch flag := argv[1]; flag {
	case "-h", "--help":
		if len(argv) > 2 {
			return nil, &IllegalArgumentError{Flag: flag}
		}
		executable, ok := find.Search(version.Any())
		if !ok {
			return nil, &NoExecutableFoundError{Requested: version.Any()}
		}
		return Help{Message: helpMessage(launcherPath, executable), Executable: executable}, nil
	case "--list":
		if len(argv) > 2 {
			return nil, &IllegalArgumentError{Flag: flag}
		}
		output, err := listExecutables(find.Enumerate())
		if err != nil {
			return nil, err
		}
		return List{Output: output}, nil
	case "--list-json":
		if len(argv) > 2 {
			return nil, &IllegalArgumentError{Flag: flag}
		}
		output, err := listExecutablesJSON(find.Enumerate())
		if err != nil {
			return nil, err
		}
		return List{Output: output}, nil
	case "--version":
		if len(argv) > 2 {
			return nil, &IllegalArgumentError{Flag: flag}
		}
		return VersionInfo{Version: Version}, nil
	}

	if requested, ok := version.FromFlag(argv[1]); ok {
		log.Debug("explicit version flag", "requested", requested)
		return executeAction(launcherPath, requested, argv[2:], find)
	}

	// Not a launcher flag: everything from argv[1] on belongs to the
	// interpreter.
	return executeAction(launcherPath, version.Any(), argv[1:], find)
}

func executeAction(launcherPath string, requested version.Requested, args []string, find finder.Finder) (Action, error) {
	executable, err := Resolve(requested, args, find)
	if err != nil {
		return nil, err
	}
	return Execute{LauncherPath: launcherPath, Executable: executable, Args: args}, nil
}
