package semver

// Bump returns the next version for the given bump label.
//
//   - "major": increments major, resets minor and patch (1.2.3 -> 2.0.0)
//   - "minor": increments minor, resets patch (1.2.3 -> 1.3.0)
//   - "patch": increments patch (1.2.3 -> 1.2.4)
//
// Any other label (including the empty no-bump label) returns v
// unchanged. The no-bump branch is unreachable in the normal CLI flow,
// which short-circuits before any arithmetic, but keeps the function
// total.
func Bump(v Version, label string) Version {
	switch label {
	case "major":
		return Version{Major: v.Major + 1, Minor: 0, Patch: 0}
	case "minor":
		return Version{Major: v.Major, Minor: v.Minor + 1, Patch: 0}
	case "patch":
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return v
	}
}
