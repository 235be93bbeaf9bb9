package logging

import (
	"fmt"
	"os"
	"strings"
)

// Env names the variables that override the [logging] section.
// The service reads LOGGING_LEVEL and LOGGING_FORMAT.
type Env struct {
	Level  string
	Format string
}

// Config is the [logging] section: the minimum level written and whether
// records are text for terminals or JSON for log collectors.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize fills in info/text, applies env overrides and rejects
// unknown levels or formats, naming the setting at fault.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	c.loadEnv(env)

	if err := c.Level.Validate(); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if err := c.Format.Validate(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}

// Merge takes the overlay's level and format when they are set.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
}

// loadEnv accepts values in any case, so LOGGING_LEVEL=DEBUG works.
func (c *Config) loadEnv(env *Env) {
	if env == nil {
		return
	}
	if v := normalize(os.Getenv(env.Level)); v != "" {
		c.Level = Level(v)
	}
	if v := normalize(os.Getenv(env.Format)); v != "" {
		c.Format = Format(v)
	}
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
