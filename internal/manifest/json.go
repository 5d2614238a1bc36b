package manifest

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// UpdateDocumentVersion sets the top-level version key of the JSON
// document at path to newVersion, preserving key order and the existing
// formatting of every other field. It reports whether the file changed;
// a document already at newVersion is left byte-for-byte as-is.
//
// A document that does not parse is a hard error: partially valid output
// is unacceptable, so nothing is written.
func UpdateDocumentVersion(path, newVersion string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return false, fmt.Errorf("failed to parse JSON in %q", path)
	}

	current := gjson.GetBytes(data, "version")
	if current.Type == gjson.String && current.Str == newVersion {
		return false, nil
	}

	updated, err := sjson.SetBytes(data, "version", newVersion)
	if err != nil {
		return false, fmt.Errorf("failed to set version in %q: %w", path, err)
	}

	// Ensure trailing newline
	if len(updated) > 0 && updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}

	if err := os.WriteFile(path, updated, manifestPerm); err != nil {
		return false, fmt.Errorf("failed to write manifest %q: %w", path, err)
	}

	return true, nil
}
