package palette

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a configuration value or input size
// makes clustering impossible. It is always reported before any trial runs.
var ErrInvalidParameter = errors.New("invalid parameter")

// Default configuration values.
const (
	DefaultClusters             = 10
	DefaultTrials               = 3
	DefaultMaxIterations        = 20
	DefaultConvergenceThreshold = 10.0
	DefaultSeed                 = 314
)

// Config controls the clustering pipeline.
//
// Config is passed by value; the pipeline never modifies it. The zero value is
// not usable, start from DefaultConfig and override fields as needed.
type Config struct {
	// Clusters is the number of centroids (K) each trial fits.
	Clusters int `json:"clusters"`

	// Trials is the number of independently seeded k-means runs (R).
	Trials int `json:"trials"`

	// MaxIterations caps the number of assign/update rounds per trial.
	MaxIterations int `json:"max_iterations"`

	// ConvergenceThreshold stops a trial early once the summed squared
	// movement of all centroids in one round falls below it. Measured in
	// squared Lab units.
	ConvergenceThreshold float64 `json:"convergence_threshold"`

	// Seed is the base seed. Trial i uses Seed+i.
	Seed uint64 `json:"seed"`

	// Observer receives per-trial reports. Nil means no reporting.
	Observer Observer `json:"-"`
}

// DefaultConfig returns the reference configuration: 10 clusters, 3 trials,
// 20 iterations, a threshold of 10.0 and seed 314.
func DefaultConfig() Config {
	return Config{
		Clusters:             DefaultClusters,
		Trials:               DefaultTrials,
		MaxIterations:        DefaultMaxIterations,
		ConvergenceThreshold: DefaultConvergenceThreshold,
		Seed:                 DefaultSeed,
	}
}

// Validate checks the parameters that do not depend on the input size.
func (c Config) Validate() error {
	if c.Clusters <= 0 {
		return fmt.Errorf("%w: cluster count must be positive, got %d", ErrInvalidParameter, c.Clusters)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trial count must be positive, got %d", ErrInvalidParameter, c.Trials)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidParameter, c.MaxIterations)
	}
	if math.IsNaN(c.ConvergenceThreshold) || c.ConvergenceThreshold < 0 {
		return fmt.Errorf("%w: convergence threshold must be non-negative, got %v", ErrInvalidParameter, c.ConvergenceThreshold)
	}
	return nil
}

// validateFor checks the full configuration against n samples.
func (c Config) validateFor(n int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Clusters > n {
		return fmt.Errorf("%w: cannot form %d clusters from %d samples", ErrInvalidParameter, c.Clusters, n)
	}
	return nil
}

func (c Config) observer() Observer {
	if c.Observer == nil {
		return nopObserver{}
	}
	return c.Observer
}
