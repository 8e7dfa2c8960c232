package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planfab/interio/pkg/render"
)

// treeCommand creates the tree command for visualizing zone structure.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "tree [cabinet.json]",
		Short: "Render the zone tree structure as a diagram",
		Long: `Render the zone tree structure as a diagram.

The tree command shows the logical subdivision of a cabinet as a Graphviz
diagram: one node per zone, colored by content type, with nested zones
dashed. This is a debugging view of the document structure; use 'solve -f
svg' for the geometric front view.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "dot" && format != formatSVG {
				return fmt.Errorf("invalid format: %q (must be dot or svg)", format)
			}
			return c.runTree(args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, <input>.tree.svg for svg)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot (default), svg")
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "include sizing and content configuration in labels")

	return cmd
}

// runTree loads the tree and writes the structure diagram.
func (c *CLI) runTree(input, output, format string, detailed bool) error {
	root, err := loadTree(input)
	if err != nil {
		return err
	}

	dot := render.ToDOT(root, render.DOTOptions{Detailed: detailed})

	if format == "dot" {
		if output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Tree diagram written")
		printFile(output)
		return nil
	}

	svg, err := render.RenderDOTSVG(dot)
	if err != nil {
		return fmt.Errorf("render tree: %w", err)
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".tree.svg"
	}
	if err := os.WriteFile(outputPath, svg, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Tree diagram written")
	printFile(outputPath)
	printStats(root.Count(), 0, false)
	return nil
}
