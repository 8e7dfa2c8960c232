package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planfab/interio/pkg/pipeline"
	"github.com/planfab/interio/pkg/render"
)

// Output formats for the solve command.
const (
	formatJSON = "json"
	formatSVG  = "svg"
)

// solveCommand creates the solve command for computing cabinet geometry.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		output  string
		format  string
		noCache bool
		labels  bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "solve [cabinet.json]",
		Short: "Solve the geometry of a cabinet interior",
		Long: `Solve the geometry of a cabinet interior.

The solve command takes a cabinet document (a zone tree in JSON) and computes
the millimetre rectangle of every leaf zone, the position of every partition
panel, shelf heights and depths, and drawer box dimensions.

The tree is validated against the active structural limits first; issues are
reported but do not abort the solve. Use 'validate' to check a tree without
solving it.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != formatJSON && format != formatSVG {
				return fmt.Errorf("invalid format: %q (must be json or svg)", format)
			}
			return c.runSolve(cmd.Context(), args[0], opts, output, format, noCache, labels)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json (default), svg")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().BoolVar(&opts.SkipValidate, "no-validate", false, "skip the validation stage")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw zone IDs in the SVG front view")
	cabinetFlags(cmd, &opts)

	return cmd
}

// runSolve loads the tree, runs the pipeline, and writes output.
func (c *CLI) runSolve(ctx context.Context, input string, opts pipeline.Options, output, format string, noCache, labels bool) error {
	root, err := loadTree(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Solving layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, root, opts)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return fmt.Errorf("solve: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if result.Validation != nil && !result.Validation.OK() {
		printWarning("Tree has %d validation issues; geometry uses clamped values", len(result.Validation.Issues))
		for _, msg := range result.Validation.Messages() {
			printDetail("%s", msg)
		}
	}

	var data []byte
	switch format {
	case formatSVG:
		svgOpts := []render.RenderOption{}
		if labels {
			svgOpts = append(svgOpts, render.WithLabels())
		}
		data = render.RenderSVG(result.Solution, svgOpts...)
	default:
		if data, err = pipeline.MarshalSolution(result.Solution); err != nil {
			return fmt.Errorf("encode solution: %w", err)
		}
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout." + format
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Solve complete")
	printFile(outputPath)
	printStats(result.Stats.ZoneCount, result.Stats.IssueCount, result.CacheInfo.SolveHit)
	printNewline()
	printNextStep("Inspect", "interio inspect "+input)

	return nil
}
