package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decorator-app/bumpver/internal/commit"
	"github.com/decorator-app/bumpver/internal/semver"
)

// Options configures a single Apply run.
type Options struct {
	// Root is the project root directory the targets resolve against.
	Root string

	// Targets are the manifests to keep in sync; the first entry must be
	// the required root manifest.
	Targets []Target

	// Message is the commit message driving the bump classification.
	Message string

	// BaseVersion, when non-empty, is the version to bump from instead of
	// the root manifest's current version (upgrade scenarios where the
	// root was already moved by an earlier pipeline step).
	BaseVersion string

	// DryRun computes the outcome without writing any file.
	DryRun bool
}

// Result describes the outcome of an Apply run.
type Result struct {
	// Category is the bump classification of the commit message.
	Category commit.Category

	// Current is the root manifest's version before the run.
	Current semver.Version

	// From is the version the arithmetic started from (base version if
	// supplied, else Current).
	From semver.Version

	// Next is the candidate new version. Zero when Skipped.
	Next semver.Version

	// Updated lists the root-relative paths of files actually rewritten.
	Updated []string

	// Skipped is true when the commit message implies no bump; nothing
	// was read or written.
	Skipped bool

	// NoChange is true when the candidate version equals the root's
	// current version, so the run was a deliberate no-op.
	NoChange bool

	// DryRun is true when the run stopped before writing on request.
	DryRun bool
}

// Apply runs the full bump sequence: classify the commit message, read
// the current version from the root manifest, compute the candidate
// version, and rewrite every existing target that needs it.
//
// The sequence is strictly linear; a fatal error on any target aborts the
// run immediately, with no rollback of files already written.
func Apply(opts Options) (*Result, error) {
	category := commit.Classify(opts.Message)
	if category == commit.None {
		return &Result{Category: category, Skipped: true}, nil
	}

	if len(opts.Targets) == 0 || !opts.Targets[0].Required {
		return nil, fmt.Errorf("first target must be the required root manifest")
	}
	rootTarget := opts.Targets[0]

	currentStr, err := ReadPackageVersion(filepath.Join(opts.Root, rootTarget.Path))
	if err != nil {
		return nil, err
	}
	current, err := semver.ParseVersion(currentStr)
	if err != nil {
		return nil, fmt.Errorf("in %s: %w", rootTarget.Path, err)
	}

	from := current
	if opts.BaseVersion != "" {
		from, err = semver.ParseVersion(opts.BaseVersion)
		if err != nil {
			return nil, fmt.Errorf("invalid base version: %w", err)
		}
	}

	next := semver.Bump(from, category.String())

	result := &Result{
		Category: category,
		Current:  current,
		From:     from,
		Next:     next,
	}

	// Guard against double-applying a bump when the root manifest was
	// already moved to the target version by a prior step. The comparison
	// is on the raw manifest string, so a root carrying a stale
	// pre-release suffix (e.g. "1.2.4-beta.1" vs candidate "1.2.4") is
	// still rewritten, dropping the suffix.
	if next.String() == strings.TrimSpace(currentStr) {
		result.NoChange = true
		return result, nil
	}

	if opts.DryRun {
		result.DryRun = true
		return result, nil
	}

	for _, target := range opts.Targets {
		path := filepath.Join(opts.Root, target.Path)

		if !target.Required {
			if _, err := os.Stat(path); err != nil {
				continue
			}
		}

		var changed bool
		switch target.Format {
		case FormatTOMLSection:
			changed, err = UpdateSectionVersion(path, next.String())
		case FormatJSONDocument:
			changed, err = UpdateDocumentVersion(path, next.String())
		default:
			err = fmt.Errorf("unsupported manifest format: %s", target.Format)
		}
		if err != nil {
			return nil, err
		}

		if changed {
			result.Updated = append(result.Updated, target.Path)
		}
	}

	return result, nil
}
