// Package semver parses and orders the dotted version strings reported by
// managed tools and published in release tags.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed semantic version. Build metadata is discarded during
// parsing; prerelease identifiers participate in ordering.
type Version struct {
	Major int
	Minor int
	Patch int
	Pre   []string
}

// Parse reads a MAJOR.MINOR[.PATCH] version with an optional prerelease
// suffix. Callers must strip any leading "v" marker first. Malformed input
// returns an error rather than a zero version.
func Parse(text string) (Version, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Version{}, fmt.Errorf("empty version")
	}

	base := trimmed
	if idx := strings.IndexByte(base, '+'); idx >= 0 {
		base = base[:idx]
	}

	var prerelease string
	if idx := strings.IndexByte(base, '-'); idx >= 0 {
		prerelease = base[idx+1:]
		base = base[:idx]
	}

	parts := strings.Split(base, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version %q: expected 2 or 3 numeric groups", trimmed)
	}

	var v Version
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := parseNumeric(part)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", trimmed, err)
		}
		nums[i] = n
	}
	v.Major, v.Minor = nums[0], nums[1]
	if len(nums) == 3 {
		v.Patch = nums[2]
	}

	if prerelease != "" {
		ids := strings.Split(prerelease, ".")
		for _, id := range ids {
			if id == "" {
				return Version{}, fmt.Errorf("invalid version %q: empty prerelease identifier", trimmed)
			}
		}
		v.Pre = ids
	}

	return v, nil
}

func parseNumeric(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("empty numeric group")
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric group %q", part)
		}
	}
	n, err := strconv.Atoi(part)
	if err != nil {
		return 0, fmt.Errorf("parse group %q: %w", part, err)
	}
	return n, nil
}

// Compare returns -1 if v < other, 0 if equal, 1 if v > other, following
// semantic-versioning precedence: the numeric triple first, then prerelease
// (a release outranks any prerelease of the same triple).
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return sign(v.Major - other.Major)
	case v.Minor != other.Minor:
		return sign(v.Minor - other.Minor)
	case v.Patch != other.Patch:
		return sign(v.Patch - other.Patch)
	}
	return comparePrerelease(v.Pre, other.Pre)
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

func comparePrerelease(a, b []string) int {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(a) == 0 {
		return 1
	}
	if len(b) == 0 {
		return -1
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ai, bi := a[i], b[i]
		aNum, aErr := strconv.Atoi(ai)
		bNum, bErr := strconv.Atoi(bi)
		aIsNum := aErr == nil
		bIsNum := bErr == nil

		switch {
		case aIsNum && bIsNum:
			if aNum != bNum {
				return sign(aNum - bNum)
			}
		case aIsNum:
			return -1
		case bIsNum:
			return 1
		default:
			if ai != bi {
				if ai < bi {
					return -1
				}
				return 1
			}
		}
	}

	if len(a) != len(b) {
		return sign(len(a) - len(b))
	}
	return 0
}

// String renders the version in canonical dotted form.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Pre) > 0 {
		s += "-" + strings.Join(v.Pre, ".")
	}
	return s
}
