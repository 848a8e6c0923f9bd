package version

import "fmt"

// ExactVersion identifies one discovered interpreter by major.minor.
// It is used as a map key for PATH enumeration results.
type ExactVersion struct {
	Major int
	Minor int
}

// String returns the version as "MAJOR.MINOR".
func (v ExactVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v ExactVersion) Compare(other ExactVersion) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// Satisfies reports whether this concrete version fulfills a request.
func (v ExactVersion) Satisfies(r Requested) bool {
	switch r.Kind {
	case KindMajorOnly:
		return v.Major == r.Major
	case KindExact:
		return v.Major == r.Major && v.Minor == r.Minor
	default:
		return true
	}
}
