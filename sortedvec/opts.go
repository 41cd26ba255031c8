package sortedvec

import (
	"github.com/npillmayer/dynamize"
)

// DefaultRebuildThreshold is the live item count an SVMap has to exceed
// before tombstones trigger a rebuild.
const DefaultRebuildThreshold = 16

type config struct {
	strategy         dynamize.Kind
	unitCount        int
	rebuildThreshold int
}

func resolveConfig(opts ...func(*config)) *config {
	cfg := &config{
		strategy:         dynamize.Binary,
		rebuildThreshold: DefaultRebuildThreshold,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rebuildThreshold < 0 {
		cfg.rebuildThreshold = 0
	}
	return cfg
}

func (cfg *config) engineConfig() dynamize.Config {
	return dynamize.Config{
		Strategy:  cfg.strategy,
		UnitCount: cfg.unitCount,
	}
}

// OptList returns a slice with the opts given; useful if you want to possibly
// append more options to the list before using it with a constructor.
func OptList(opts ...func(*config)) []func(*config) {
	return opts
}

// OptStrategy selects the dynamization strategy. Defaults to dynamize.Binary.
func OptStrategy(k dynamize.Kind) func(*config) {
	return func(cfg *config) {
		cfg.strategy = k
	}
}

// OptUnitCount sets the initial slot capacity of the underlying engine.
func OptUnitCount(n int) func(*config) {
	return func(cfg *config) {
		cfg.unitCount = n
	}
}

// OptRebuildThreshold sets the live item count an SVMap has to exceed before
// it purges tombstones. Defaults to DefaultRebuildThreshold. Ignored by SVQueue.
func OptRebuildThreshold(n int) func(*config) {
	return func(cfg *config) {
		cfg.rebuildThreshold = n
	}
}
