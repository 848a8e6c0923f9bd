// Package venv locates Python virtual environments.
package venv

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultDir is the expected directory name for virtual environments
// discovered relative to the working directory.
const DefaultDir = ".venv"

// ExecutablePath returns the interpreter path inside a virtual environment
// root. The root is not checked for existence: an activated environment is
// taken on faith.
func ExecutablePath(root string) string {
	return filepath.Join(root, "bin", "python")
}

// Executable returns the interpreter belonging to an activated virtual
// environment, or failing that, to a `.venv` directory in the working
// directory or any of its ancestors.
func Executable() (string, bool) {
	if path, ok := activated(); ok {
		return path, true
	}
	return searchAncestors()
}

// activated consults the VIRTUAL_ENV environment variable, which tools like
// `activate` scripts set to the environment's root directory.
func activated() (string, bool) {
	log.Debug("checking for the VIRTUAL_ENV environment variable")
	root := os.Getenv("VIRTUAL_ENV")
	if root == "" {
		return "", false
	}
	log.Debug("VIRTUAL_ENV is set", "root", root)
	return ExecutablePath(root), true
}

func searchAncestors() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		// Best effort: an unreadable working directory only means no venv.
		log.Warn("working directory is invalid", "err", err)
		return "", false
	}
	return FindIn(cwd)
}

// FindIn walks from startDir up through every ancestor directory looking for
// `<dir>/.venv/bin/python`, returning the first interpreter that exists.
func FindIn(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}

	log.Debug("searching for a venv upward", "start", dir)
	for {
		candidate := ExecutablePath(filepath.Join(dir, DefaultDir))
		log.Debug("checking", "path", candidate)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", false
		}
		dir = parent
	}
}
