package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version represents a plain major.minor.patch version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

var (
	// versionRegex matches the leading numeric triple of a version string.
	// Anything after the third component (pre-release label, build
	// metadata) is ignored and not preserved on output.
	versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

	// ErrInvalidVersion is returned when a version string does not start
	// with a major.minor.patch numeric triple.
	ErrInvalidVersion = errors.New("invalid version format")
)

// String returns the canonical "major.minor.patch" representation.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(12)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	return sb.String()
}

// ParseVersion parses the leading major.minor.patch triple of s.
//
// Supported inputs:
//   - "1.2.3"
//   - "1.2.3-beta.1" (suffix ignored, not preserved)
//   - "1.2.3+build.7" (suffix ignored, not preserved)
//
// Returns ErrInvalidVersion (wrapped, carrying the offending string) when
// s does not begin with three dot-separated numbers.
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)

	matches := versionRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid major version: %s", ErrInvalidVersion, err.Error())
	}
	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid minor version: %s", ErrInvalidVersion, err.Error())
	}
	patch, err := strconv.Atoi(matches[3])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid patch version: %s", ErrInvalidVersion, err.Error())
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}
