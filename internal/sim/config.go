package sim

import (
	"errors"
	"fmt"
)

// Default simulation window.
const (
	DefaultSize    = 40
	DefaultPadding = 4
)

// ErrInvalidConfig is returned for a window that cannot be simulated.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config describes the simulation window.
type Config struct {
	Size    int // Side of the trimmed core grid
	Padding int // Border absorbed before trimming, on each side
}

// DefaultConfig returns the default 40x40 window with a padding of 4.
func DefaultConfig() Config {
	return Config{Size: DefaultSize, Padding: DefaultPadding}
}

// Window returns the side of the padded simulation window.
func (c Config) Window() int {
	return c.Size + 2*c.Padding
}

// Validate checks the window dimensions.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: padding must not be negative, got %d", ErrInvalidConfig, c.Padding)
	}
	return nil
}
