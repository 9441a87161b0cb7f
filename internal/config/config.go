// Package config holds the runtime settings of the paint-mcp server.
//
// Settings are read from the environment first and may then be overridden
// by command-line flags registered with RegisterFlags.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
)

// Environment variables consulted by Load.
const (
	EnvLogLevel        = "PAINT_MCP_LOG_LEVEL"
	EnvMaxRequestBytes = "PAINT_MCP_MAX_REQUEST_BYTES"
)

const (
	// DefaultLogLevel is used when neither the environment nor a flag sets one.
	DefaultLogLevel = "info"

	// DefaultMaxRequestBytes bounds a single JSON-RPC line on stdin.
	DefaultMaxRequestBytes = 1024 * 1024

	// MinRequestBytes is the smallest accepted request limit.
	MinRequestBytes = 4 * 1024
)

// LoggerName is the name attached to every log line.
const LoggerName = "paint-mcp"

// Config is the server configuration.
type Config struct {
	LogLevel        string
	MaxRequestBytes int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:        DefaultLogLevel,
		MaxRequestBytes: DefaultMaxRequestBytes,
	}
}

// Load returns the default configuration with environment overrides
// applied. Only malformed values are reported; call Validate once flags
// have been parsed.
func Load() (Config, error) {
	cfg := Default()

	if v, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}

	if v, ok := os.LookupEnv(EnvMaxRequestBytes); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvMaxRequestBytes, v, err)
		}
		cfg.MaxRequestBytes = n
	}

	return cfg, nil
}

// RegisterFlags binds the configuration fields to flags on fs. The current
// field values become the flag defaults.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel,
		"log level (trace, debug, info, warn, error, off)")
	fs.IntVar(&c.MaxRequestBytes, "max-request-bytes", c.MaxRequestBytes,
		"maximum size of a single JSON-RPC request line")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Level() == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.MaxRequestBytes < MinRequestBytes {
		return fmt.Errorf("max request bytes must be at least %d, got %d", MinRequestBytes, c.MaxRequestBytes)
	}
	return nil
}

// Level parses LogLevel. Unknown names yield hclog.NoLevel.
func (c Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// NewLogger builds the server logger writing to w.
func (c Config) NewLogger(w io.Writer) hclog.Logger {
	level := c.Level()
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   LoggerName,
		Output: w,
		Level:  level,
	})
}
