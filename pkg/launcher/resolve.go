package launcher

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/pylaunch/pylaunch/pkg/finder"
	"github.com/pylaunch/pylaunch/pkg/shebang"
	"github.com/pylaunch/pylaunch/pkg/venv"
	"github.com/pylaunch/pylaunch/pkg/version"
)

// Resolve turns a version request and the interpreter's arguments into a
// concrete executable path. Steps in precedence order:
//
//  1. Unconstrained request only: an active or discoverable virtual
//     environment wins outright, even if its interpreter does not exist on
//     disk. Failing that, a shebang in the first argument refines the
//     request but does not choose a path.
//  2. A PY_PYTHON or PY_PYTHON{major} override refines the request; a
//     malformed override is fatal since the user set it deliberately.
//  3. The finder searches for the refined request.
//
// The passive heuristics (venv walk, shebang) never fail the resolution;
// they either contribute or are ignored.
func Resolve(requested version.Requested, args []string, find finder.Finder) (string, error) {
	if requested.Kind == version.KindAny {
		if path, ok := venv.Executable(); ok {
			log.Debug("using virtual environment", "path", path)
			return path, nil
		}
		if refined, ok := shebangRequest(args); ok {
			log.Debug("shebang refined the request", "requested", refined)
			requested = refined
		}
	}

	refined, err := envOverride(requested)
	if err != nil {
		return "", err
	}
	requested = refined

	if path, ok := find.Search(requested); ok {
		return path, nil
	}
	return "", &NoExecutableFoundError{Requested: requested}
}

// shebangRequest inspects the first argument for a Python shebang. Only
// the first argument is considered: anything later may be an argument to
// the script rather than a script path, and finding out for sure would
// mean replicating the interpreter's own argument parsing.
func shebangRequest(args []string) (version.Requested, bool) {
	if len(args) == 0 {
		return version.Requested{}, false
	}

	log.Debug("checking for a shebang", "file", args[0])
	file, err := os.Open(args[0])
	if err != nil {
		return version.Requested{}, false
	}
	defer file.Close()

	return shebang.Parse(file)
}

// envOverride applies the environment variable matching the request's
// shape, if any. An empty value is treated as unset.
func envOverride(requested version.Requested) (version.Requested, error) {
	envVar, ok := requested.EnvVar()
	if !ok {
		return requested, nil
	}

	log.Debug("checking environment override", "var", envVar)
	value := os.Getenv(envVar)
	if value == "" {
		return requested, nil
	}

	log.Debug("environment override set", "var", envVar, "value", value)
	overridden, err := version.Parse(value)
	if err != nil {
		return version.Requested{}, &BadVersionFormatError{Source: envVar, Input: value, Err: err}
	}
	return overridden, nil
}
