// Package version defines the interpreter version grammar shared by CLI
// flags, shebang lines, and environment-variable overrides.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates how specific a Requested version is.
type Kind int

const (
	// KindAny places no constraint on the interpreter version.
	KindAny Kind = iota
	// KindMajorOnly constrains the major version, e.g. "3".
	KindMajorOnly
	// KindExact constrains major and minor, e.g. "3.6".
	KindExact
)

// Requested is a version constraint parsed from user input.
// The zero value is the unconstrained request.
type Requested struct {
	Kind  Kind
	Major int
	Minor int
}

// Any returns the unconstrained request.
func Any() Requested {
	return Requested{Kind: KindAny}
}

// MajorOnly returns a request constrained to a major version.
func MajorOnly(major int) Requested {
	return Requested{Kind: KindMajorOnly, Major: major}
}

// Exact returns a request constrained to a major.minor version.
func Exact(major, minor int) Requested {
	return Requested{Kind: KindExact, Major: major, Minor: minor}
}

// Parse parses "MAJOR" or "MAJOR.MINOR" into a Requested version.
// A micro version ("3.6.4") is an error, never a truncation; so are an
// empty string and any non-numeric component.
func Parse(s string) (Requested, error) {
	if s == "" {
		return Requested{}, fmt.Errorf("empty version string")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Requested{}, fmt.Errorf("micro versions are not supported: %q", s)
	}

	major, err := parseComponent(parts[0])
	if err != nil {
		return Requested{}, err
	}
	if len(parts) == 1 {
		return MajorOnly(major), nil
	}

	minor, err := parseComponent(parts[1])
	if err != nil {
		return Requested{}, err
	}
	return Exact(major, minor), nil
}

// FromFlag extracts a version request from a CLI flag, e.g. "-3" or "-3.12".
// The second return is false when the argument is not a version flag at all.
func FromFlag(arg string) (Requested, bool) {
	if !strings.HasPrefix(arg, "-") || len(arg) < 2 {
		return Requested{}, false
	}
	requested, err := Parse(arg[1:])
	if err != nil {
		return Requested{}, false
	}
	return requested, true
}

// parseComponent parses one dot-separated version component. strconv.Atoi
// alone would accept signs, so digits are checked explicitly first.
func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty version component")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-numeric version component: %q", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid version component %q: %w", s, err)
	}
	return n, nil
}

// EnvVar names the environment variable that can override this request:
// PY_PYTHON for an unconstrained request, PY_PYTHON{major} for a major-only
// one. An exact request has nothing left to refine, so it has no variable.
func (r Requested) EnvVar() (string, bool) {
	switch r.Kind {
	case KindAny:
		return "PY_PYTHON", true
	case KindMajorOnly:
		return "PY_PYTHON" + strconv.Itoa(r.Major), true
	default:
		return "", false
	}
}

// String renders the request for diagnostics.
func (r Requested) String() string {
	switch r.Kind {
	case KindMajorOnly:
		return fmt.Sprintf("Python %d", r.Major)
	case KindExact:
		return fmt.Sprintf("Python %d.%d", r.Major, r.Minor)
	default:
		return "Python"
	}
}
