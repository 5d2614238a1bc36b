// Package cli builds the bumpver command-line surface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/decorator-app/bumpver/internal/config"
	"github.com/decorator-app/bumpver/internal/manifest"
	"github.com/decorator-app/bumpver/internal/printer"
	"github.com/decorator-app/bumpver/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command for the bumpver cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "bumpver",
		Version:   fmt.Sprintf("v%s", version.GetVersion()),
		Usage:     "Bump manifest versions from commit message conventions",
		UsageText: "bumpver [--flags] <commit_message> [base_version]",
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "root",
				Aliases:     []string{"r"},
				Usage:       "Project root containing the manifest files",
				DefaultText: "two levels above the binary",
			},
			&urfavecli.BoolFlag{
				Name:  "dry-run",
				Usage: "Compute the bump without writing any file",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runBump(cmd, cfg)
		},
	}
}

// runBump resolves the invocation inputs, applies the bump, and reports
// the outcome on stdout.
func runBump(cmd *urfavecli.Command, cfg *config.Config) error {
	if cmd.Args().Len() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s\n", cmd.UsageText)
		return fmt.Errorf("missing required argument: commit_message")
	}

	commitMsg := cmd.Args().Get(0)
	baseVersion := cmd.Args().Get(1)

	root, err := manifest.ResolveRoot(cmd.String("root"), cfg)
	if err != nil {
		return err
	}

	result, err := manifest.Apply(manifest.Options{
		Root:        root,
		Targets:     manifest.Targets(cfg),
		Message:     commitMsg,
		BaseVersion: baseVersion,
		DryRun:      cmd.Bool("dry-run"),
	})
	if err != nil {
		return err
	}

	report(result)
	return nil
}

// report prints the outcome of a run. Outcomes are conveyed via stdout
// text; every path past argument validation exits 0.
func report(result *manifest.Result) {
	switch {
	case result.Skipped:
		// no bump category: stay silent so pipelines can chain freely
	case result.NoChange:
		printer.PrintInfo(fmt.Sprintf("No version change: %s", result.Current))
	case result.DryRun:
		printer.PrintInfo(fmt.Sprintf("Would bump: %s -> %s (%s)", result.From, result.Next, result.Category))
	case len(result.Updated) > 0:
		printer.PrintSuccess(fmt.Sprintf("Version bumped: %s -> %s (%s)", result.From, result.Next, result.Category))
		fmt.Printf("Updated: %s\n", strings.Join(result.Updated, ", "))
	default:
		printer.PrintWarning(fmt.Sprintf("No changes made for version: %s", result.Current))
	}
}
