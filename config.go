package cusbc

import "time"

const (
	// DefaultExecutable is the vendor tool name as distributed, resolved
	// via PATH unless overridden with WithExecutable
	DefaultExecutable = "CUSBC.exe"

	// DefaultTimeout bounds a single tool invocation
	DefaultTimeout = 10 * time.Second
)

// Config holds the configuration for a hub session
type Config struct {
	Executable string
	Port       string        // COM port identifier, discovered lazily when empty
	Password   string        // Optional, required by flash/reset/password operations
	Timeout    time.Duration // Per-invocation bound, 0 disables
	Runner     Runner
}

// Option is a functional option for configuring a hub session
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Executable: DefaultExecutable,
		Timeout:    DefaultTimeout,
		Runner:     execRunner{},
	}
}

// WithExecutable sets the path to the vendor hub control executable
func WithExecutable(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return ErrInvalidConfig
		}
		c.Executable = path
		return nil
	}
}

// WithPort selects the hub's COM port, skipping automatic discovery
func WithPort(port string) Option {
	return func(c *Config) error {
		c.Port = port
		return nil
	}
}

// WithPassword sets the hub access password
func WithPassword(password string) Option {
	return func(c *Config) error {
		c.Password = password
		return nil
	}
}

// WithTimeout bounds each tool invocation; 0 disables the bound
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout < 0 {
			return ErrInvalidConfig
		}
		c.Timeout = timeout
		return nil
	}
}

// WithRunner substitutes the process runner, mainly for testing
func WithRunner(r Runner) Option {
	return func(c *Config) error {
		if r == nil {
			return ErrInvalidConfig
		}
		c.Runner = r
		return nil
	}
}
