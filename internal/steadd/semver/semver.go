// Package semver implements the three-part version scheme used across the
// add-on catalog: strict "major.minor.patch" strings with numeric ordering.
// Anything else (pre-release tags, missing segments, stray whitespace) is
// treated as invalid, and every consumer of an invalid version falls back to
// the permissive outcome rather than failing.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed three-part version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String formats the version as "major.minor.patch". It is the inverse of
// Parse for every valid version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse parses a strict "major.minor.patch" version string. The second
// return value reports whether the input was valid; no partial result is
// returned for invalid input.
func Parse(s string) (Version, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, false
	}

	nums := [3]int{}
	for i, part := range parts {
		if part == "" {
			return Version{}, false
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, false
		}
		// Atoi accepts "+1" and "-0"; only plain digits are allowed.
		for _, r := range part {
			if r < '0' || r > '9' {
				return Version{}, false
			}
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, true
}

// IsValid reports whether s is a well-formed version string.
func IsValid(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Compare orders two version strings numerically over (major, minor, patch),
// returning -1, 0 or 1. If either input fails to parse the result is 0:
// invalid versions are incomparable, and callers that need strictness must
// validate up front.
func Compare(a, b string) int {
	va, okA := Parse(a)
	vb, okB := Parse(b)
	if !okA || !okB {
		return 0
	}

	if c := compareInt(va.Major, vb.Major); c != 0 {
		return c
	}
	if c := compareInt(va.Minor, vb.Minor); c != 0 {
		return c
	}
	return compareInt(va.Patch, vb.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsAtLeast reports whether version is greater than or equal to minVersion.
func IsAtLeast(version, minVersion string) bool {
	return Compare(version, minVersion) >= 0
}

// BumpKind selects which segment Bump increments.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

// Bump increments one segment of current and zeroes the segments below it.
// An unrecognized kind bumps the patch segment. When current does not parse,
// Bump returns it unchanged rather than failing; catalog entries that
// predate version validation flow through here, so a malformed current
// version must not abort the operation.
func Bump(current string, kind BumpKind) string {
	v, ok := Parse(current)
	if !ok {
		return current
	}

	switch kind {
	case BumpMajor:
		v = Version{Major: v.Major + 1}
	case BumpMinor:
		v = Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		v.Patch++
	}
	return v.String()
}

// Compatibility is the result of a platform-compatibility check.
type Compatibility struct {
	Compatible bool   `json:"compatible"`
	Reason     string `json:"reason,omitempty"`
}

// CheckCompatibility decides whether an item requiring requiredMin can run
// on a platform at currentVersion. A missing or unparseable requirement is
// always compatible: a malformed minimum version on one catalog item must
// never block installs. When incompatible, Reason names both versions.
func CheckCompatibility(requiredMin, currentVersion string) Compatibility {
	if requiredMin == "" || !IsValid(requiredMin) {
		return Compatibility{Compatible: true}
	}

	if IsAtLeast(currentVersion, requiredMin) {
		return Compatibility{Compatible: true}
	}

	return Compatibility{
		Compatible: false,
		Reason: fmt.Sprintf("requires platform version %s or newer, current platform is %s",
			requiredMin, currentVersion),
	}
}
