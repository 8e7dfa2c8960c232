package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/planfab/interio/pkg/cache"
	"github.com/planfab/interio/pkg/observability"
	"github.com/planfab/interio/pkg/zone"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete validate → solve pipeline with caching.
func (r *Runner) Execute(ctx context.Context, root *zone.Zone, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{Tree: root}
	result.Stats.ZoneCount = root.Count()

	hash, err := HashTree(root)
	if err != nil {
		return nil, fmt.Errorf("hash tree: %w", err)
	}
	result.TreeHash = hash

	// Stage 1: Validate
	if !opts.SkipValidate {
		validateStart := time.Now()
		observability.Solver().OnValidateStart(ctx, result.Stats.ZoneCount)
		vr := zone.Validate(root, *opts.Limits)
		result.Validation = &vr
		result.Stats.IssueCount = len(vr.Issues)
		result.Stats.ValidateTime = time.Since(validateStart)
		observability.Solver().OnValidateComplete(ctx, len(vr.Issues), result.Stats.ValidateTime)

		r.Logger.Info("validated tree",
			"zones", result.Stats.ZoneCount,
			"issues", len(vr.Issues),
			"duration", result.Stats.ValidateTime)
	}

	// Stage 2: Solve
	solveStart := time.Now()
	sol, solveHit, err := r.SolveWithCacheInfo(ctx, root, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.Solution = sol
	result.Stats.SolveTime = time.Since(solveStart)
	result.CacheInfo.SolveHit = solveHit

	r.Logger.Info("solved layout",
		"leaves", len(sol.Zones),
		"partitions", len(sol.Partitions),
		"cached", solveHit,
		"duration", result.Stats.SolveTime)

	return result, nil
}

// SolveWithCacheInfo solves with caching and returns cache hit info.
// The treeHash may be empty, in which case it is computed here.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, root *zone.Zone, treeHash string, opts Options) (*Solution, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if treeHash == "" {
		var err error
		if treeHash, err = HashTree(root); err != nil {
			return nil, false, err
		}
	}
	cacheKey := r.Keyer.LayoutKey(treeHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := UnmarshalSolution(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// Undecodable entry - fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	observability.Solver().OnSolveStart(ctx, root.Count())
	start := time.Now()
	sol, err := Solve(root, opts)
	observability.Solver().OnSolveComplete(ctx, root.Count(), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := MarshalSolution(sol); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.DefaultTTL) == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return sol, false, nil
}

// SolveTree is a convenience wrapper that discards cache hit info.
func (r *Runner) SolveTree(ctx context.Context, root *zone.Zone, opts Options) (*Solution, error) {
	sol, _, err := r.SolveWithCacheInfo(ctx, root, "", opts)
	return sol, err
}

// Validate runs only the validation stage.
func (r *Runner) Validate(ctx context.Context, root *zone.Zone, opts Options) (*zone.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	observability.Solver().OnValidateStart(ctx, root.Count())
	start := time.Now()
	vr := zone.Validate(root, *opts.Limits)
	observability.Solver().OnValidateComplete(ctx, len(vr.Issues), time.Since(start))
	return &vr, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
