package axis

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
)

// GenerateOption configures a single Generate call
type GenerateOption func(*generateConfig)

type generateConfig struct {
	rng    *rand.Rand
	seed   *int64
	logger *zap.SugaredLogger
}

// WithSeed makes the call reproducible: the same seed and Domain always
// produce the same Assignment.
func WithSeed(seed int64) GenerateOption {
	return func(c *generateConfig) {
		c.seed = &seed
	}
}

// WithRand supplies the random source directly. It takes precedence over
// WithSeed. The source must not be shared between goroutines.
func WithRand(rng *rand.Rand) GenerateOption {
	return func(c *generateConfig) {
		c.rng = rng
	}
}

// WithLogger overrides the diagnostics logger for this call
func WithLogger(log *zap.SugaredLogger) GenerateOption {
	return func(c *generateConfig) {
		c.logger = log
	}
}

// Generate samples every mandatory axis, a random subset of at most
// MaxOptional optional axes, then applies the exclusion rules.
func (d *Domain) Generate(opts ...GenerateOption) (Assignment, error) {
	var cfg generateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := cfg.rng
	switch {
	case rng != nil:
	case cfg.seed != nil:
		rng = NewRand(*cfg.seed)
	default:
		rng = newEntropyRand()
	}

	log := cfg.logger
	if log == nil {
		log = logger.ComponentLogger("axis")
	}
	log = log.With(logger.FieldDomain, d.name)
	if cfg.seed != nil && cfg.rng == nil {
		log = log.With(logger.FieldSeed, *cfg.seed)
	}

	sel := NewSelection()

	for _, name := range d.policy.Mandatory {
		if err := d.sampleInto(sel, name, rng, log); err != nil {
			return Assignment{}, err
		}
	}

	optional := d.policy.Optional
	limit := min(d.policy.MaxOptional, len(optional))
	k := rng.IntN(limit + 1)

	// Partial Fisher-Yates: the first k slots become a uniform ordered draw
	pool := append([]string(nil), optional...)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	for _, name := range pool[:k] {
		if err := d.sampleInto(sel, name, rng, log); err != nil {
			return Assignment{}, err
		}
	}

	applyExclusions(sel, d.rules, log.Named("exclusion"))

	return sel.Snapshot(), nil
}

func (d *Domain) sampleInto(sel *Selection, name string, rng *rand.Rand, log *zap.SugaredLogger) error {
	values, ok := d.axes[name]
	if !ok {
		log.Warnw("Policy axis not defined, skipping", logger.FieldAxis, name)
		return nil
	}

	v, err := WeightedChoice(values, d.weights[name], rng)
	if err != nil {
		return errors.Wrapf(err, "sample %s.%s", d.name, name)
	}
	sel.Set(name, v)
	log.Debugw("Axis sampled", logger.FieldAxis, name, logger.FieldValue, v)
	return nil
}
