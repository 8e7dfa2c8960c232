// Package pipeline provides the core solve pipeline for Interio.
//
// This package implements the complete validate → solve pipeline that
// can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Validate: Check the zone tree against the active structural limits
//  2. Solve: Compute leaf rectangles, partitions, shelf positions, and
//     drawer geometry for the configured cabinet
//
// Each stage can be run independently or as part of the complete
// pipeline. Solves are cached under a key derived from the tree hash
// and the cabinet parameters.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    CabinetWidthMM:  600,
//	    CabinetHeightMM: 2000,
//	    CabinetDepthMM:  580,
//	}
//	result, err := runner.Execute(ctx, tree, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sol := result.Solution
package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/planfab/interio/pkg/cache"
	"github.com/planfab/interio/pkg/errors"
	"github.com/planfab/interio/pkg/limits"
	"github.com/planfab/interio/pkg/zone"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultCabinetWidthMM is the default cabinet width.
	DefaultCabinetWidthMM = 600.0

	// DefaultCabinetHeightMM is the default cabinet height.
	DefaultCabinetHeightMM = 2000.0

	// DefaultCabinetDepthMM is the default cabinet depth.
	DefaultCabinetDepthMM = 580.0

	// DefaultPartitionThicknessMM is the default thickness of dividing
	// panels between vertically divided zones.
	DefaultPartitionThicknessMM = 18.0

	// DefaultBodyThicknessMM is the default carcass panel thickness
	// used for drawer interiors and box side clearances.
	DefaultBodyThicknessMM = 18.0
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the solve pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Cabinet dimensions
	CabinetWidthMM  float64 `json:"cabinet_width_mm,omitempty"`
	CabinetHeightMM float64 `json:"cabinet_height_mm,omitempty"`
	CabinetDepthMM  float64 `json:"cabinet_depth_mm,omitempty"`

	// Panel thicknesses
	PartitionThicknessMM float64 `json:"partition_thickness_mm,omitempty"`
	BodyThicknessMM      float64 `json:"body_thickness_mm,omitempty"`

	// LimitsFile optionally points to a TOML file overriding the
	// built-in structural limits.
	LimitsFile string `json:"limits_file,omitempty"`

	// SkipValidate solves without the validation stage. Geometry for an
	// invalid tree is still well-defined, just not guaranteed sensible.
	SkipValidate bool `json:"skip_validate,omitempty"`

	// Refresh bypasses the cache and recomputes the solve.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Limits *limits.Limits `json:"-"`
	Logger *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the zone tree the solve ran against.
	Tree *zone.Zone

	// TreeHash is the content hash of the tree.
	TreeHash string

	// Validation holds the issues found by the validation stage, nil
	// when validation was skipped.
	Validation *zone.Result

	// Solution is the solved geometry.
	Solution *Solution

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ZoneCount    int
	IssueCount   int
	ValidateTime time.Duration
	SolveTime    time.Duration
}

// CacheInfo tracks cache hits for the solve stage.
type CacheInfo struct {
	SolveHit bool // Whether the solved geometry came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.CabinetWidthMM == 0 {
		o.CabinetWidthMM = DefaultCabinetWidthMM
	}
	if o.CabinetHeightMM == 0 {
		o.CabinetHeightMM = DefaultCabinetHeightMM
	}
	if o.CabinetDepthMM == 0 {
		o.CabinetDepthMM = DefaultCabinetDepthMM
	}
	if o.PartitionThicknessMM == 0 {
		o.PartitionThicknessMM = DefaultPartitionThicknessMM
	}
	if o.BodyThicknessMM == 0 {
		o.BodyThicknessMM = DefaultBodyThicknessMM
	}

	if o.CabinetWidthMM < 0 || o.CabinetHeightMM < 0 || o.CabinetDepthMM < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cabinet dimensions must be positive")
	}
	if o.PartitionThicknessMM < 0 || o.BodyThicknessMM < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "panel thicknesses must be non-negative")
	}

	if o.Limits == nil {
		if o.LimitsFile != "" {
			l, err := limits.LoadTOML(o.LimitsFile)
			if err != nil {
				return err
			}
			o.Limits = &l
		} else {
			l := limits.Default()
			o.Limits = &l
		}
	}
	if err := o.Limits.Check(); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// LayoutKeyOpts returns cache key options for the solve stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		CabinetWidthMM:       o.CabinetWidthMM,
		CabinetHeightMM:      o.CabinetHeightMM,
		CabinetDepthMM:       o.CabinetDepthMM,
		PartitionThicknessMM: o.PartitionThicknessMM,
		BodyThicknessMM:      o.BodyThicknessMM,
		LimitsHash:           o.limitsHash(),
	}
}

func (o *Options) limitsHash() string {
	if o.Limits == nil {
		return ""
	}
	data, _ := json.Marshal(o.Limits)
	return cache.Hash(data)
}
