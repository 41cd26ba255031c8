package dynamize

import "fmt"

// Config configures a Dynamic engine.
type Config struct {
	// Strategy selects the placement strategy. The zero value is Binary.
	Strategy Kind
	// UnitCount is the initial slot capacity. 0 selects the strategy's default.
	UnitCount int
}

func (cfg Config) normalized() Config {
	if cfg.UnitCount == 0 {
		cfg.UnitCount = DefaultUnitCount
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Strategy > SkewBinary {
		return fmt.Errorf("%w: %w: %v", ErrInvalidConfig, ErrUnknownStrategy, cfg.Strategy)
	}
	if cfg.UnitCount < 0 {
		return fmt.Errorf("%w: negative unit count %d", ErrInvalidConfig, cfg.UnitCount)
	}
	return nil
}
