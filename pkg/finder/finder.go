// Package finder discovers Python interpreters on the search path.
package finder

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/pylaunch/pylaunch/pkg/version"
)

// Finder locates installed interpreters. Implemented by PathFinder in
// production and by fakes in tests.
type Finder interface {
	// Search returns the best installed interpreter for the request:
	// the exact match for an exact request, the highest matching minor for
	// a major-only request, the newest interpreter for an unconstrained one.
	Search(requested version.Requested) (string, bool)
	// Enumerate returns every discoverable interpreter keyed by version.
	// The map is empty when none are found.
	Enumerate() map[version.ExactVersion]string
}

// PathFinder scans the directories of the PATH environment variable for
// executables named `pythonMAJOR.MINOR`.
type PathFinder struct{}

var executableName = regexp.MustCompile(`^python(\d+)\.(\d+)$`)

func (PathFinder) Enumerate() map[version.ExactVersion]string {
	found := make(map[version.ExactVersion]string)

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Unreadable PATH entries are commonplace; skip them.
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			matches := executableName.FindStringSubmatch(entry.Name())
			if matches == nil {
				continue
			}
			major, err := strconv.Atoi(matches[1])
			if err != nil {
				continue
			}
			minor, err := strconv.Atoi(matches[2])
			if err != nil {
				continue
			}
			exact := version.ExactVersion{Major: major, Minor: minor}
			// Earlier PATH entries shadow later ones.
			if _, ok := found[exact]; !ok {
				found[exact] = filepath.Join(dir, entry.Name())
				log.Debug("found interpreter", "version", exact, "path", found[exact])
			}
		}
	}

	return found
}

func (f PathFinder) Search(requested version.Requested) (string, bool) {
	return SearchIn(f.Enumerate(), requested)
}

// SearchIn picks the best match for a request out of an enumeration.
func SearchIn(executables map[version.ExactVersion]string, requested version.Requested) (string, bool) {
	var best version.ExactVersion
	var path string
	found := false

	for exact, candidate := range executables {
		if !exact.Satisfies(requested) {
			continue
		}
		if !found || exact.Compare(best) > 0 {
			best = exact
			path = candidate
			found = true
		}
	}

	return path, found
}
