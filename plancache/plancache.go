package plancache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/nicia-ai/typegraph/compiler"
)

// CachedPlan is the msgpack-serializable snapshot of a compiled
// compiler.LogicalPlan. The operator tree itself carries predicate.P
// values and a dialect.Adapter, neither of which is meant to survive a
// round trip through an external cache; CachedPlan instead stores the
// plan's rendered operator tree (via compiler.Explain) plus the handful
// of scalar facts a caller needs to decide whether a hit is still good
// enough to skip recompilation.
type CachedPlan struct {
	Dialect        string `msgpack:"dialect"`
	Explain        string `msgpack:"explain"`
	EffectiveLimit *int   `msgpack:"effective_limit,omitempty"`
}

// Snapshot builds a CachedPlan from a compiled plan and the dialect name
// it was compiled for.
func Snapshot(dialectName string, plan *compiler.LogicalPlan) CachedPlan {
	return CachedPlan{
		Dialect:        dialectName,
		Explain:        compiler.Explain(plan),
		EffectiveLimit: plan.State.EffectiveLimit,
	}
}

// PlanCache wraps a Cache with msgpack encoding and Debug-level
// hit/miss diagnostics (§A.2). The compiler itself never logs; this is
// the one component in scope that legitimately has something to log
// about.
type PlanCache struct {
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// New returns a PlanCache backed by cache, expiring entries after ttl (0
// meaning no expiry). A nil logger falls back to slog.Default().
func New(cache Cache, ttl time.Duration, logger *slog.Logger) *PlanCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanCache{cache: cache, ttl: ttl, logger: logger}
}

// Get looks up a previously stored plan snapshot by key. The bool
// return is false on both a genuine miss and a decode failure; a decode
// failure additionally logs at Debug level, since a stale or
// incompatible payload should never surface as a caller-visible error.
func (pc *PlanCache) Get(ctx context.Context, key string) (*CachedPlan, bool, error) {
	raw, err := pc.cache.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("plancache: get %q: %w", key, err)
	}
	if raw == nil {
		pc.logger.DebugContext(ctx, "plan cache miss", "key", key)
		return nil, false, nil
	}

	var snap CachedPlan
	if err := msgpack.Unmarshal(raw, &snap); err != nil {
		pc.logger.DebugContext(ctx, "plan cache decode failed, treating as miss", "key", key, "error", err)
		return nil, false, nil
	}
	pc.logger.DebugContext(ctx, "plan cache hit", "key", key)
	return &snap, true, nil
}

// Put stores a plan snapshot under key.
func (pc *PlanCache) Put(ctx context.Context, key string, snap CachedPlan) error {
	raw, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("plancache: encode %q: %w", key, err)
	}
	if err := pc.cache.Set(ctx, key, raw, pc.ttl); err != nil {
		return fmt.Errorf("plancache: set %q: %w", key, err)
	}
	pc.logger.DebugContext(ctx, "plan cache store", "key", key)
	return nil
}

// Invalidate removes a single cached plan.
func (pc *PlanCache) Invalidate(ctx context.Context, key string) error {
	return pc.cache.Delete(ctx, key)
}

// Clear removes every cached plan.
func (pc *PlanCache) Clear(ctx context.Context) error {
	return pc.cache.Clear(ctx)
}
