// Package commit classifies commit messages into version bump categories
// based on a fixed prefix convention.
package commit

import "strings"

// Category represents the version bump implied by a commit message.
type Category string

const (
	// Major is triggered by "release(...)" commits.
	Major Category = "major"

	// Minor is triggered by "feature(...)" commits.
	Minor Category = "minor"

	// Patch is triggered by "fix(...)" commits.
	Patch Category = "patch"

	// None means the commit message implies no version bump.
	None Category = ""
)

// String returns the category label ("" for None).
func (c Category) String() string {
	return string(c)
}

// Classify maps a commit message to its bump category.
//
// The message is trimmed and lowercased, then tested against literal
// prefixes in order: "release(" -> Major, "feature(" -> Minor,
// "fix(" -> Patch. Anything else is None.
func Classify(msg string) Category {
	msg = strings.ToLower(strings.TrimSpace(msg))

	switch {
	case strings.HasPrefix(msg, "release("):
		return Major
	case strings.HasPrefix(msg, "feature("):
		return Minor
	case strings.HasPrefix(msg, "fix("):
		return Patch
	default:
		return None
	}
}
