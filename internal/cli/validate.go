package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planfab/interio/pkg/pipeline"
)

// validateCommand creates the validate command for checking zone trees.
func (c *CLI) validateCommand() *cobra.Command {
	var quiet bool
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "validate [cabinet.json]",
		Short: "Validate a cabinet document against structural limits",
		Long: `Validate a cabinet document against structural limits.

Every rule violation in the tree is reported, not just the first: depth and
child-count caps, minimum zone sizes, partition counts, shelf configuration,
and drawer configuration. The command exits non-zero when issues are found,
so it can gate CI or pre-commit checks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0], opts, quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-issue output")
	cmd.Flags().StringVar(&opts.LimitsFile, "limits", "", "TOML file overriding structural limits")

	return cmd
}

// runValidate loads the tree and reports every rule violation.
func (c *CLI) runValidate(ctx context.Context, input string, opts pipeline.Options, quiet bool) error {
	root, err := loadTree(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	result, err := runner.Validate(ctx, root, opts)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	prog.done(fmt.Sprintf("Checked %d zones", root.Count()))

	if result.OK() {
		printSuccess("Tree is valid")
		printStats(root.Count(), 0, false)
		return nil
	}

	if !quiet {
		for _, issue := range result.Issues {
			printWarning("%s", issue.String())
		}
	}
	printError("%d issues found", len(result.Issues))
	return fmt.Errorf("validation failed with %d issues", len(result.Issues))
}
