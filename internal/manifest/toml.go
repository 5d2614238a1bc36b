package manifest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// packageSection is the TOML section whose version key is authoritative.
const packageSection = "[package]"

// versionLineRegex matches a quoted version assignment, whitespace-tolerant
// around "=". Only the matched segment is replaced, so trailing content
// (comments, a carriage return) survives untouched.
var versionLineRegex = regexp.MustCompile(`^(\s*version\s*=\s*")[^"]+(")`)

// manifestPerm is the file mode used when rewriting manifests.
const manifestPerm = 0o644

// ReadPackageVersion parses a Cargo.toml-style manifest and returns the
// version string from its [package] section. A missing file maps to
// ErrMissingManifest; a missing or non-string version key to
// ErrVersionKeyNotFound.
func ReadPackageVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrMissingManifest, path)
		}
		return "", fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}

	pkg, ok := obj["package"].(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: no [package] section in %q", ErrVersionKeyNotFound, path)
	}

	version, ok := pkg["version"].(string)
	if !ok {
		return "", fmt.Errorf("%w: no version in [package] section of %q", ErrVersionKeyNotFound, path)
	}

	return version, nil
}

// sectionState tracks the line scanner's position relative to the tracked
// TOML section.
type sectionState int

const (
	outsideSection sectionState = iota
	insideSection
	sectionClosed
)

// UpdateSectionVersion rewrites the first version key inside the [package]
// section of the file at path to newVersion, leaving every other byte of
// the file as-is. It reports whether a replacement was made; when no
// version line is found inside the section, the file is left untouched.
//
// Once the tracked section is closed by a different bracketed header it is
// never re-entered, even if the same header text repeats later in the file.
func UpdateSectionVersion(path, newVersion string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	state := outsideSection
	updated := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch state {
		case outsideSection:
			if trimmed == packageSection {
				state = insideSection
			}
		case insideSection:
			if strings.HasPrefix(trimmed, "[") && trimmed != packageSection {
				state = sectionClosed
				continue
			}
			if !updated && versionLineRegex.MatchString(line) {
				lines[i] = versionLineRegex.ReplaceAllString(line, "${1}"+newVersion+"${2}")
				updated = true
			}
		case sectionClosed:
			// never re-entered
		}
	}

	if !updated {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), manifestPerm); err != nil {
		return false, fmt.Errorf("failed to write manifest %q: %w", path, err)
	}

	return true, nil
}
