// Package cli implements the interio command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/planfab/interio/pkg/buildinfo"
	"github.com/planfab/interio/pkg/cache"
	interioio "github.com/planfab/interio/pkg/io"
	"github.com/planfab/interio/pkg/pipeline"
	"github.com/planfab/interio/pkg/zone"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "interio"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "interio",
		Short:        "Interio solves cabinet interior layouts",
		Long:         `Interio is a CLI tool for designing cabinet interiors: it subdivides a cabinet into zones, fills them with shelves and drawers, and solves the millimetre geometry of every panel, shelf, and box.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/interio/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Tree Loading
// =============================================================================

// loadTree reads a zone tree document from a file path.
func loadTree(path string) (*zone.Zone, error) {
	root, err := interioio.ImportFile(path)
	if err != nil {
		return nil, fmt.Errorf("load tree %s: %w", path, err)
	}
	return root, nil
}

// cabinetFlags registers the shared cabinet dimension flags on cmd.
func cabinetFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.CabinetWidthMM, "width", 0, "cabinet width in mm (default 600)")
	cmd.Flags().Float64Var(&opts.CabinetHeightMM, "height", 0, "cabinet height in mm (default 2000)")
	cmd.Flags().Float64Var(&opts.CabinetDepthMM, "depth", 0, "cabinet depth in mm (default 580)")
	cmd.Flags().Float64Var(&opts.PartitionThicknessMM, "partition-thickness", 0, "partition panel thickness in mm (default 18)")
	cmd.Flags().Float64Var(&opts.BodyThicknessMM, "body-thickness", 0, "carcass panel thickness in mm (default 18)")
	cmd.Flags().StringVar(&opts.LimitsFile, "limits", "", "TOML file overriding structural limits")
}
